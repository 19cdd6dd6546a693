package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	portsprov "github.com/parkingflow/parking_flow_app/internal/core/ports/providers"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/middleware"
)

// ratesService exposes the upstream exchange-rate feed to the HTTP layer.
type ratesService struct {
	rateProvider portsprov.RateProvider
}

// NewRatesService creates a new rates service.
func NewRatesService(rateProvider portsprov.RateProvider) portssvc.RatesService {
	return &ratesService{rateProvider: rateProvider}
}

var _ portssvc.RatesService = (*ratesService)(nil)

// LatestRates fetches the current snapshot for the configured currencies.
func (s *ratesService) LatestRates(ctx context.Context) (*domain.RateSnapshot, error) {
	snapshot, err := s.rateProvider.FetchLatest(ctx)
	if err != nil {
		middleware.RateFetchesTotal.WithLabelValues("error").Inc()
		middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch latest exchange rates",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: could not fetch latest rates", apperrors.ErrRatesUnavailable)
	}
	middleware.RateFetchesTotal.WithLabelValues("success").Inc()

	if !snapshot.Success || len(snapshot.Rates) == 0 {
		return nil, fmt.Errorf("%w: latest snapshot is unusable", apperrors.ErrRatesUnavailable)
	}
	return snapshot, nil
}
