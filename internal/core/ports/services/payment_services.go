package services

import (
	"context"
	"time"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// PaymentService computes payment previews for parking sessions.
//
// PreviewPayment resolves the area, validates the interval, selects the
// weekday or weekend rate for the given calendar date, applies the area's
// discount and returns the charge per target currency. It fails with
// apperrors.ErrNotFound (unknown area), apperrors.ErrInvalidDuration
// (endTime <= startTime), apperrors.ErrRatesUnavailable (rates could not be
// obtained for the date) or apperrors.ErrCalculation. Nothing is persisted.
type PaymentService interface {
	PreviewPayment(ctx context.Context, areaID string, startTime, endTime, date time.Time) (domain.PaymentQuote, error)
}
