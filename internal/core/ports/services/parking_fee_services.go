package services

import (
	"context"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/parkingflow/parking_flow_app/internal/dto"
)

// ParkingFeeService defines business operations on parking fee records.
type ParkingFeeService interface {
	CreateParkingFee(ctx context.Context, req dto.CreateParkingFeeRequest, creatorUserID string) (*domain.ParkingFee, error)
	GetParkingFeeByID(ctx context.Context, feeID string) (*domain.ParkingFee, error)
	ListParkingFees(ctx context.Context) ([]domain.ParkingFee, error)
	UpdateParkingFee(ctx context.Context, feeID string, req dto.UpdateParkingFeeRequest, updaterUserID string) (*domain.ParkingFee, error)
	DeleteParkingFee(ctx context.Context, feeID string) error
}
