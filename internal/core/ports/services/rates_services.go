package services

import (
	"context"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// RatesService exposes the upstream exchange-rate feed.
type RatesService interface {
	// LatestRates fetches the current snapshot for the configured target
	// currencies. It fails with apperrors.ErrRatesUnavailable when the
	// upstream cannot be reached or answers with an unusable payload.
	LatestRates(ctx context.Context) (*domain.RateSnapshot, error)
}
