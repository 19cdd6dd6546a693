package services_test

import (
	"context"
	"errors"
	"testing"

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
type ParkingAreaServiceTestSuite struct {
	suite.Suite
	mockAreaRepo *MockParkingAreaRepository
	mockFeeRepo  *MockParkingFeeRepository
	service      portssvc.ParkingAreaService
}

func (suite *ParkingAreaServiceTestSuite) SetupTest() {
	suite.mockAreaRepo = new(MockParkingAreaRepository)
	suite.mockFeeRepo = new(MockParkingFeeRepository)
	suite.service = services.NewParkingAreaService(suite.mockAreaRepo, suite.mockFeeRepo)
}

func (suite *ParkingAreaServiceTestSuite) TestCreateParkingArea_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateParkingAreaRequest{
		Name:                  "Central Garage",
		Location:              "Main St 1",
		WeekdaysHourlyRateUsd: decimal.NewFromInt(10),
		WeekendHourlyRateUsd:  decimal.NewFromInt(20),
		DiscountPercentage:    15,
		IsActive:              true,
	}

	suite.mockAreaRepo.On("SaveParkingArea", ctx, mock.AnythingOfType("domain.ParkingArea")).Return(nil).Once()

	area, err := suite.service.CreateParkingArea(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(area)
	suite.NotEmpty(area.ParkingAreaID)
	suite.Equal("Central Garage", area.Name)
	suite.Equal(creatorUserID, area.CreatedBy)
	suite.Equal(creatorUserID, area.LastUpdatedBy)
	suite.mockAreaRepo.AssertExpectations(suite.T())
}

func (suite *ParkingAreaServiceTestSuite) TestCreateParkingArea_MissingName() {
	ctx := context.Background()
	req := dto.CreateParkingAreaRequest{
		WeekdaysHourlyRateUsd: decimal.NewFromInt(10),
	}

	area, err := suite.service.CreateParkingArea(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(area)
	suite.mockAreaRepo.AssertNotCalled(suite.T(), "SaveParkingArea", mock.Anything, mock.Anything)
}

func (suite *ParkingAreaServiceTestSuite) TestCreateParkingArea_NegativeRate() {
	ctx := context.Background()
	req := dto.CreateParkingAreaRequest{
		Name:                  "Central Garage",
		WeekdaysHourlyRateUsd: decimal.NewFromInt(-1),
	}

	area, err := suite.service.CreateParkingArea(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(area)
}

func (suite *ParkingAreaServiceTestSuite) TestUpdateParkingArea_MergesOnlyProvidedFields() {
	ctx := context.Background()
	areaID := uuid.NewString()
	existing := &domain.ParkingArea{
		ParkingAreaID:         areaID,
		Name:                  "Central Garage",
		Location:              "Main St 1",
		WeekdaysHourlyRateUsd: decimal.NewFromInt(10),
		WeekendHourlyRateUsd:  decimal.NewFromInt(20),
		DiscountPercentage:    0,
		IsActive:              true,
	}

	newRate := decimal.NewFromInt(12)
	req := dto.UpdateParkingAreaRequest{WeekdaysHourlyRateUsd: &newRate}

	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, areaID).Return(existing, nil).Once()
	suite.mockAreaRepo.On("UpdateParkingArea", ctx, mock.AnythingOfType("domain.ParkingArea")).Return(nil).Once()

	updated, err := suite.service.UpdateParkingArea(ctx, areaID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.WeekdaysHourlyRateUsd.Equal(newRate))
	suite.Equal("Central Garage", updated.Name)
	suite.Equal("Main St 1", updated.Location)
	suite.True(updated.WeekendHourlyRateUsd.Equal(decimal.NewFromInt(20)))
	suite.mockAreaRepo.AssertExpectations(suite.T())
}

func (suite *ParkingAreaServiceTestSuite) TestUpdateParkingArea_NotFound() {
	ctx := context.Background()
	areaID := uuid.NewString()

	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, areaID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateParkingArea(ctx, areaID, dto.UpdateParkingAreaRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(updated)
}

func (suite *ParkingAreaServiceTestSuite) TestListParkingFeesForArea_VerifiesAreaExists() {
	ctx := context.Background()
	areaID := uuid.NewString()

	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, areaID).Return(nil, apperrors.ErrNotFound).Once()

	fees, err := suite.service.ListParkingFeesForArea(ctx, areaID)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(fees)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "ListParkingFeesByArea", mock.Anything, mock.Anything)
}

func (suite *ParkingAreaServiceTestSuite) TestListParkingFeesForArea_Success() {
	ctx := context.Background()
	areaID := uuid.NewString()
	area := &domain.ParkingArea{ParkingAreaID: areaID, Name: "Central Garage"}
	stored := []domain.ParkingFee{{ParkingFeeID: uuid.NewString(), ParkingAreaID: areaID}}

	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, areaID).Return(area, nil).Once()
	suite.mockFeeRepo.On("ListParkingFeesByArea", ctx, areaID).Return(stored, nil).Once()

	fees, err := suite.service.ListParkingFeesForArea(ctx, areaID)

	suite.Require().NoError(err)
	suite.Len(fees, 1)
}

func TestParkingAreaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ParkingAreaServiceTestSuite))
}
