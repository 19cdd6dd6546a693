package services

import (
	"context"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/parkingflow/parking_flow_app/internal/dto"
)

// ParkingAreaService defines business operations on parking areas.
type ParkingAreaService interface {
	CreateParkingArea(ctx context.Context, req dto.CreateParkingAreaRequest, creatorUserID string) (*domain.ParkingArea, error)
	GetParkingAreaByID(ctx context.Context, areaID string) (*domain.ParkingArea, error)
	ListParkingAreas(ctx context.Context) ([]domain.ParkingArea, error)
	UpdateParkingArea(ctx context.Context, areaID string, req dto.UpdateParkingAreaRequest, updaterUserID string) (*domain.ParkingArea, error)
	DeleteParkingArea(ctx context.Context, areaID string) error
	ListParkingFeesForArea(ctx context.Context, areaID string) ([]domain.ParkingFee, error)
}
