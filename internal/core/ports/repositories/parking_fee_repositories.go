package repositories

import (
	"context"
	"time"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// ParkingFeeRepository defines persistence operations for parking fee records.
// FindParkingFeeByID returns apperrors.ErrNotFound when the fee is absent.
type ParkingFeeRepository interface {
	SaveParkingFee(ctx context.Context, fee domain.ParkingFee) error
	UpdateParkingFee(ctx context.Context, fee domain.ParkingFee) error
	FindParkingFeeByID(ctx context.Context, feeID string) (*domain.ParkingFee, error)
	ListParkingFees(ctx context.Context) ([]domain.ParkingFee, error)
	ListParkingFeesByArea(ctx context.Context, areaID string) ([]domain.ParkingFee, error)
	// ListParkingFeesByDateRange returns every fee whose parking date falls in
	// [from, to). Grouping and summing happen in the service layer; the store
	// is only asked to filter.
	ListParkingFeesByDateRange(ctx context.Context, from, to time.Time) ([]domain.ParkingFee, error)
	DeleteParkingFee(ctx context.Context, feeID string) error
	CountParkingFees(ctx context.Context) (int, error)
}
