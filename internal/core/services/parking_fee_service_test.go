package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/core/services"
	"github.com/parkingflow/parking_flow_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ParkingFeeServiceTestSuite struct {
	suite.Suite
	mockFeeRepo *MockParkingFeeRepository
	service     portssvc.ParkingFeeService
}

func (suite *ParkingFeeServiceTestSuite) SetupTest() {
	suite.mockFeeRepo = new(MockParkingFeeRepository)
	suite.service = services.NewParkingFeeService(suite.mockFeeRepo)
}

func validCreateFeeRequest() dto.CreateParkingFeeRequest {
	start := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	return dto.CreateParkingFeeRequest{
		ParkingAreaID: uuid.NewString(),
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
		ParkingDate:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		PaymentResult: dto.PaymentResultPayload{
			AmountUsd: decimal.NewFromInt(20),
			Amounts: map[string]decimal.Decimal{
				"USD": decimal.NewFromInt(20),
				"EUR": decimal.NewFromInt(18),
			},
		},
	}
}

func (suite *ParkingFeeServiceTestSuite) TestCreateParkingFee_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validCreateFeeRequest()

	suite.mockFeeRepo.On("SaveParkingFee", ctx, mock.AnythingOfType("domain.ParkingFee")).Return(nil).Once()

	fee, err := suite.service.CreateParkingFee(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(fee)
	suite.NotEmpty(fee.ParkingFeeID)
	suite.Equal(req.ParkingAreaID, fee.ParkingAreaID)
	suite.True(fee.PaymentResult.AmountUsd.Equal(decimal.NewFromInt(20)))
	suite.Equal(creatorUserID, fee.CreatedBy)
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *ParkingFeeServiceTestSuite) TestCreateParkingFee_MissingAreaID() {
	ctx := context.Background()
	req := validCreateFeeRequest()
	req.ParkingAreaID = ""

	fee, err := suite.service.CreateParkingFee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(fee)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "SaveParkingFee", mock.Anything, mock.Anything)
}

func (suite *ParkingFeeServiceTestSuite) TestCreateParkingFee_StartNotBeforeEnd() {
	ctx := context.Background()
	req := validCreateFeeRequest()
	req.EndTime = req.StartTime

	fee, err := suite.service.CreateParkingFee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(fee)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "SaveParkingFee", mock.Anything, mock.Anything)
}

func (suite *ParkingFeeServiceTestSuite) TestUpdateParkingFee_MergesOnlyProvidedFields() {
	ctx := context.Background()
	feeID := uuid.NewString()
	start := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	existing := &domain.ParkingFee{
		ParkingFeeID:  feeID,
		ParkingAreaID: uuid.NewString(),
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
		ParkingDate:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		PaymentResult: domain.PaymentResult{AmountUsd: decimal.NewFromInt(20)},
	}

	newEnd := start.Add(3 * time.Hour)
	req := dto.UpdateParkingFeeRequest{EndTime: &newEnd}

	suite.mockFeeRepo.On("FindParkingFeeByID", ctx, feeID).Return(existing, nil).Once()
	suite.mockFeeRepo.On("UpdateParkingFee", ctx, mock.AnythingOfType("domain.ParkingFee")).Return(nil).Once()

	updated, err := suite.service.UpdateParkingFee(ctx, feeID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newEnd, updated.EndTime)
	suite.Equal(start, updated.StartTime)
	suite.True(updated.PaymentResult.AmountUsd.Equal(decimal.NewFromInt(20)))
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *ParkingFeeServiceTestSuite) TestUpdateParkingFee_InvalidMergedInterval() {
	ctx := context.Background()
	feeID := uuid.NewString()
	start := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	existing := &domain.ParkingFee{
		ParkingFeeID: feeID,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		ParkingDate:  time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	}

	// Moving the start past the existing end must fail even though the
	// request is well formed on its own.
	newStart := start.Add(3 * time.Hour)
	req := dto.UpdateParkingFeeRequest{StartTime: &newStart}

	suite.mockFeeRepo.On("FindParkingFeeByID", ctx, feeID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateParkingFee(ctx, feeID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(updated)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "UpdateParkingFee", mock.Anything, mock.Anything)
}

func (suite *ParkingFeeServiceTestSuite) TestUpdateParkingFee_NotFound() {
	ctx := context.Background()
	feeID := uuid.NewString()

	suite.mockFeeRepo.On("FindParkingFeeByID", ctx, feeID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateParkingFee(ctx, feeID, dto.UpdateParkingFeeRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(updated)
}

func TestParkingFeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ParkingFeeServiceTestSuite))
}
