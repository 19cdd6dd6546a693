package providers

import (
	"context"
	"time"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// RateProvider fetches exchange-rate snapshots from an upstream service.
// Implementations perform one outbound HTTP call per invocation and keep no
// state between calls.
//
// Both methods fail with apperrors.ErrUpstreamUnavailable when the upstream
// answers with a non-success status, and apperrors.ErrMalformedResponse when
// the body cannot be decoded. A payload with success=false delivered over a
// 200 is neither: it is returned as-is for the caller to inspect.
type RateProvider interface {
	FetchLatest(ctx context.Context) (*domain.RateSnapshot, error)
	FetchHistorical(ctx context.Context, date time.Time) (*domain.RateSnapshot, error)
}
