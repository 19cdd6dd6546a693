package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	portsrepo "github.com/parkingflow/parking_flow_app/internal/core/ports/repositories"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ParkingAreaRepository ---
type MockParkingAreaRepository struct {
	mock.Mock
}

func (m *MockParkingAreaRepository) SaveParkingArea(ctx context.Context, area domain.ParkingArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockParkingAreaRepository) UpdateParkingArea(ctx context.Context, area domain.ParkingArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockParkingAreaRepository) FindParkingAreaByID(ctx context.Context, areaID string) (*domain.ParkingArea, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParkingArea), args.Error(1)
}

func (m *MockParkingAreaRepository) ListParkingAreas(ctx context.Context) ([]domain.ParkingArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParkingArea), args.Error(1)
}

func (m *MockParkingAreaRepository) DeleteParkingArea(ctx context.Context, areaID string) error {
	args := m.Called(ctx, areaID)
	return args.Error(0)
}

func (m *MockParkingAreaRepository) CountParkingAreas(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockParkingAreaRepository) CountActiveParkingAreas(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.ParkingAreaRepository = (*MockParkingAreaRepository)(nil)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchLatest(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

func (m *MockRateProvider) FetchHistorical(ctx context.Context, date time.Time) (*domain.RateSnapshot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockAreaRepo     *MockParkingAreaRepository
	mockRateProvider *MockRateProvider
	service          portssvc.PaymentService

	areaID string
	area   *domain.ParkingArea
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockAreaRepo = new(MockParkingAreaRepository)
	suite.mockRateProvider = new(MockRateProvider)
	suite.service = services.NewPaymentService(suite.mockAreaRepo, suite.mockRateProvider)

	suite.areaID = uuid.NewString()
	suite.area = &domain.ParkingArea{
		ParkingAreaID:         suite.areaID,
		Name:                  "Central Garage",
		WeekdaysHourlyRateUsd: decimal.NewFromInt(10),
		WeekendHourlyRateUsd:  decimal.NewFromInt(20),
		DiscountPercentage:    0,
		IsActive:              true,
	}
}

func snapshotFor(date time.Time, rates map[string]decimal.Decimal) *domain.RateSnapshot {
	return &domain.RateSnapshot{
		Success:   true,
		Timestamp: date.Unix(),
		Base:      "USD",
		Date:      date.Format("2006-01-02"),
		Rates:     rates,
	}
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_WeekdayNoDiscount() {
	ctx := context.Background()
	// A Tuesday
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	rates := map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.9"),
	}
	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(suite.area, nil).Once()
	suite.mockRateProvider.On("FetchHistorical", ctx, date).Return(snapshotFor(date, rates), nil).Once()

	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, end, date)

	suite.Require().NoError(err)
	suite.Require().Len(quote, 2)
	suite.True(quote["USD"].Equal(decimal.RequireFromString("20.00")), "USD charge was %s", quote["USD"])
	suite.True(quote["EUR"].Equal(decimal.RequireFromString("18.00")), "EUR charge was %s", quote["EUR"])
	suite.mockAreaRepo.AssertExpectations(suite.T())
	suite.mockRateProvider.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_WeekendUsesWeekendRate() {
	ctx := context.Background()
	// A Saturday
	date := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	rates := map[string]decimal.Decimal{"USD": decimal.NewFromInt(1)}
	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(suite.area, nil).Once()
	suite.mockRateProvider.On("FetchHistorical", ctx, date).Return(snapshotFor(date, rates), nil).Once()

	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, end, date)

	suite.Require().NoError(err)
	suite.True(quote["USD"].Equal(decimal.RequireFromString("40.00")), "USD charge was %s", quote["USD"])
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_DiscountApplied() {
	ctx := context.Background()
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	suite.area.DiscountPercentage = 50
	rates := map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.9"),
	}
	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(suite.area, nil).Once()
	suite.mockRateProvider.On("FetchHistorical", ctx, date).Return(snapshotFor(date, rates), nil).Once()

	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, end, date)

	suite.Require().NoError(err)
	suite.True(quote["USD"].Equal(decimal.RequireFromString("10.00")), "USD charge was %s", quote["USD"])
	suite.True(quote["EUR"].Equal(decimal.RequireFromString("9.00")), "EUR charge was %s", quote["EUR"])
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_FractionalHours() {
	ctx := context.Background()
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	rates := map[string]decimal.Decimal{"USD": decimal.NewFromInt(1)}
	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(suite.area, nil).Once()
	suite.mockRateProvider.On("FetchHistorical", ctx, date).Return(snapshotFor(date, rates), nil).Once()

	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, end, date)

	suite.Require().NoError(err)
	suite.True(quote["USD"].Equal(decimal.RequireFromString("15.00")), "USD charge was %s", quote["USD"])
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_AreaNotFound() {
	ctx := context.Background()
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(nil, apperrors.ErrNotFound).Once()

	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, end, date)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(quote)
	suite.mockRateProvider.AssertNotCalled(suite.T(), "FetchHistorical", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_NonPositiveDuration() {
	ctx := context.Background()
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)

	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(suite.area, nil).Twice()

	// Zero duration
	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, start, date)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInvalidDuration))
	suite.Nil(quote)

	// Negative duration
	quote, err = suite.service.PreviewPayment(ctx, suite.areaID, start, start.Add(-time.Hour), date)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInvalidDuration))
	suite.Nil(quote)

	// The provider must never be hit for an invalid interval.
	suite.mockRateProvider.AssertNotCalled(suite.T(), "FetchHistorical", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_RatesFetchFails() {
	ctx := context.Background()
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(suite.area, nil).Once()
	suite.mockRateProvider.On("FetchHistorical", ctx, date).Return(nil, apperrors.ErrUpstreamUnavailable).Once()

	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, end, date)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrRatesUnavailable))
	suite.Nil(quote)
}

func (suite *PaymentServiceTestSuite) TestPreviewPayment_UnsuccessfulSnapshot() {
	ctx := context.Background()
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	badSnapshot := &domain.RateSnapshot{Success: false}
	suite.mockAreaRepo.On("FindParkingAreaByID", ctx, suite.areaID).Return(suite.area, nil).Once()
	suite.mockRateProvider.On("FetchHistorical", ctx, date).Return(badSnapshot, nil).Once()

	quote, err := suite.service.PreviewPayment(ctx, suite.areaID, start, end, date)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrRatesUnavailable))
	suite.Nil(quote)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
