package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/parkingflow/parking_flow_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestRates_Success(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	svc := services.NewRatesService(mockProvider)

	snapshot := &domain.RateSnapshot{
		Success: true,
		Base:    "EUR",
		Date:    "2026-01-06",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("1.08"),
			"PLN": decimal.RequireFromString("4.31"),
		},
	}
	mockProvider.On("FetchLatest", ctx).Return(snapshot, nil).Once()

	got, err := svc.LatestRates(ctx)

	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Base)
	assert.Len(t, got.Rates, 2)
	mockProvider.AssertExpectations(t)
}

func TestLatestRates_UpstreamFailure(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	svc := services.NewRatesService(mockProvider)

	mockProvider.On("FetchLatest", ctx).Return(nil, apperrors.ErrUpstreamUnavailable).Once()

	got, err := svc.LatestRates(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRatesUnavailable))
	assert.Nil(t, got)
}

func TestLatestRates_UnsuccessfulSnapshot(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	svc := services.NewRatesService(mockProvider)

	mockProvider.On("FetchLatest", ctx).Return(&domain.RateSnapshot{Success: false}, nil).Once()

	got, err := svc.LatestRates(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRatesUnavailable))
	assert.Nil(t, got)
}
