package repositories

import (
	"context"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// ParkingAreaRepository defines persistence operations for parking areas.
// FindParkingAreaByID returns apperrors.ErrNotFound when the area is absent.
type ParkingAreaRepository interface {
	SaveParkingArea(ctx context.Context, area domain.ParkingArea) error
	UpdateParkingArea(ctx context.Context, area domain.ParkingArea) error
	FindParkingAreaByID(ctx context.Context, areaID string) (*domain.ParkingArea, error)
	ListParkingAreas(ctx context.Context) ([]domain.ParkingArea, error)
	DeleteParkingArea(ctx context.Context, areaID string) error
	CountParkingAreas(ctx context.Context) (int, error)
	CountActiveParkingAreas(ctx context.Context) (int, error)
}
