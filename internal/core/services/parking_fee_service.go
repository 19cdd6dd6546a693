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
)

// parkingFeeService provides business logic for parking fee records.
type parkingFeeService struct {
	feeRepo portsrepo.ParkingFeeRepository
}

// NewParkingFeeService creates a new parking fee service.
func NewParkingFeeService(feeRepo portsrepo.ParkingFeeRepository) portssvc.ParkingFeeService {
	return &parkingFeeService{feeRepo: feeRepo}
}

var _ portssvc.ParkingFeeService = (*parkingFeeService)(nil)

func validateFeeInterval(start, end, parkingDate time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: start time must be before end time", apperrors.ErrValidation)
	}
	if parkingDate.IsZero() {
		return fmt.Errorf("%w: parking date is required", apperrors.ErrValidation)
	}
	return nil
}

// CreateParkingFee validates and persists a new fee record.
func (s *parkingFeeService) CreateParkingFee(ctx context.Context, req dto.CreateParkingFeeRequest, creatorUserID string) (*domain.ParkingFee, error) {
	if req.ParkingAreaID == "" {
		return nil, fmt.Errorf("%w: parking area ID is required", apperrors.ErrValidation)
	}
	if err := validateFeeInterval(req.StartTime, req.EndTime, req.ParkingDate); err != nil {
		return nil, err
	}

	now := time.Now()
	fee := domain.ParkingFee{
		ParkingFeeID:  uuid.NewString(),
		ParkingAreaID: req.ParkingAreaID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		ParkingDate:   req.ParkingDate,
		PaymentResult: domain.PaymentResult{
			AmountUsd: req.PaymentResult.AmountUsd,
			Amounts:   req.PaymentResult.Amounts,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.feeRepo.SaveParkingFee(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to create parking fee: %w", err)
	}
	return &fee, nil
}

// GetParkingFeeByID retrieves one fee record.
func (s *parkingFeeService) GetParkingFeeByID(ctx context.Context, feeID string) (*domain.ParkingFee, error) {
	fee, err := s.feeRepo.FindParkingFeeByID(ctx, feeID)
	if err != nil {
		return nil, err
	}
	return fee, nil
}

// ListParkingFees retrieves all fee records.
func (s *parkingFeeService) ListParkingFees(ctx context.Context) ([]domain.ParkingFee, error) {
	fees, err := s.feeRepo.ListParkingFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parking fees: %w", err)
	}
	return fees, nil
}

// UpdateParkingFee merges the provided fields into an existing fee record.
func (s *parkingFeeService) UpdateParkingFee(ctx context.Context, feeID string, req dto.UpdateParkingFeeRequest, updaterUserID string) (*domain.ParkingFee, error) {
	fee, err := s.feeRepo.FindParkingFeeByID(ctx, feeID)
	if err != nil {
		return nil, err
	}

	if req.ParkingAreaID != nil {
		if *req.ParkingAreaID == "" {
			return nil, fmt.Errorf("%w: parking area ID is required", apperrors.ErrValidation)
		}
		fee.ParkingAreaID = *req.ParkingAreaID
	}
	if req.StartTime != nil {
		fee.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		fee.EndTime = *req.EndTime
	}
	if req.ParkingDate != nil {
		fee.ParkingDate = *req.ParkingDate
	}
	if err := validateFeeInterval(fee.StartTime, fee.EndTime, fee.ParkingDate); err != nil {
		return nil, err
	}
	if req.PaymentResult != nil {
		fee.PaymentResult = domain.PaymentResult{
			AmountUsd: req.PaymentResult.AmountUsd,
			Amounts:   req.PaymentResult.Amounts,
		}
	}
	fee.LastUpdatedAt = time.Now()
	fee.LastUpdatedBy = updaterUserID

	if err := s.feeRepo.UpdateParkingFee(ctx, *fee); err != nil {
		return nil, fmt.Errorf("failed to update parking fee: %w", err)
	}
	return fee, nil
}

// DeleteParkingFee removes a fee record.
func (s *parkingFeeService) DeleteParkingFee(ctx context.Context, feeID string) error {
	return s.feeRepo.DeleteParkingFee(ctx, feeID)
}
