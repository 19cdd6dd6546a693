package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	portsrepo "github.com/parkingflow/parking_flow_app/internal/core/ports/repositories"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/dto"
	"github.com/shopspring/decimal"
)

// parkingAreaService provides business logic for parking areas.
type parkingAreaService struct {
	areaRepo portsrepo.ParkingAreaRepository
	feeRepo  portsrepo.ParkingFeeRepository
}

// NewParkingAreaService creates a new parking area service.
func NewParkingAreaService(areaRepo portsrepo.ParkingAreaRepository, feeRepo portsrepo.ParkingFeeRepository) portssvc.ParkingAreaService {
	return &parkingAreaService{
		areaRepo: areaRepo,
		feeRepo:  feeRepo,
	}
}

var _ portssvc.ParkingAreaService = (*parkingAreaService)(nil)

func validateAreaRates(weekdays, weekend decimal.Decimal) error {
	if weekdays.IsNegative() || weekend.IsNegative() {
		return fmt.Errorf("%w: hourly rates must be non-negative", apperrors.ErrValidation)
	}
	return nil
}

// CreateParkingArea validates and persists a new parking area.
func (s *parkingAreaService) CreateParkingArea(ctx context.Context, req dto.CreateParkingAreaRequest, creatorUserID string) (*domain.ParkingArea, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: parking area name is required", apperrors.ErrValidation)
	}
	if err := validateAreaRates(req.WeekdaysHourlyRateUsd, req.WeekendHourlyRateUsd); err != nil {
		return nil, err
	}

	now := time.Now()
	area := domain.ParkingArea{
		ParkingAreaID:         uuid.NewString(),
		Name:                  req.Name,
		Location:              req.Location,
		WeekdaysHourlyRateUsd: req.WeekdaysHourlyRateUsd,
		WeekendHourlyRateUsd:  req.WeekendHourlyRateUsd,
		DiscountPercentage:    req.DiscountPercentage,
		Description:           req.Description,
		IsActive:              req.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.areaRepo.SaveParkingArea(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to create parking area: %w", err)
	}
	return &area, nil
}

// GetParkingAreaByID retrieves one parking area.
func (s *parkingAreaService) GetParkingAreaByID(ctx context.Context, areaID string) (*domain.ParkingArea, error) {
	area, err := s.areaRepo.FindParkingAreaByID(ctx, areaID)
	if err != nil {
		return nil, err
	}
	return area, nil
}

// ListParkingAreas retrieves all parking areas.
func (s *parkingAreaService) ListParkingAreas(ctx context.Context) ([]domain.ParkingArea, error) {
	areas, err := s.areaRepo.ListParkingAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parking areas: %w", err)
	}
	return areas, nil
}

// UpdateParkingArea merges the provided fields into an existing area. Only
// fields set in the request change; everything else keeps its stored value.
func (s *parkingAreaService) UpdateParkingArea(ctx context.Context, areaID string, req dto.UpdateParkingAreaRequest, updaterUserID string) (*domain.ParkingArea, error) {
	area, err := s.areaRepo.FindParkingAreaByID(ctx, areaID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: parking area name is required", apperrors.ErrValidation)
		}
		area.Name = *req.Name
	}
	if req.Location != nil {
		area.Location = *req.Location
	}
	if req.WeekdaysHourlyRateUsd != nil {
		area.WeekdaysHourlyRateUsd = *req.WeekdaysHourlyRateUsd
	}
	if req.WeekendHourlyRateUsd != nil {
		area.WeekendHourlyRateUsd = *req.WeekendHourlyRateUsd
	}
	if err := validateAreaRates(area.WeekdaysHourlyRateUsd, area.WeekendHourlyRateUsd); err != nil {
		return nil, err
	}
	if req.DiscountPercentage != nil {
		area.DiscountPercentage = *req.DiscountPercentage
	}
	if req.Description != nil {
		area.Description = *req.Description
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}
	area.LastUpdatedAt = time.Now()
	area.LastUpdatedBy = updaterUserID

	if err := s.areaRepo.UpdateParkingArea(ctx, *area); err != nil {
		return nil, fmt.Errorf("failed to update parking area: %w", err)
	}
	return area, nil
}

// DeleteParkingArea removes a parking area.
func (s *parkingAreaService) DeleteParkingArea(ctx context.Context, areaID string) error {
	return s.areaRepo.DeleteParkingArea(ctx, areaID)
}

// ListParkingFeesForArea retrieves all fee records of one parking area.
func (s *parkingAreaService) ListParkingFeesForArea(ctx context.Context, areaID string) ([]domain.ParkingFee, error) {
	if _, err := s.areaRepo.FindParkingAreaByID(ctx, areaID); err != nil {
		return nil, err
	}
	fees, err := s.feeRepo.ListParkingFeesByArea(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fees for parking area %s: %w", areaID, err)
	}
	return fees, nil
}
