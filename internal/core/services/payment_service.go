package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	portsprov "github.com/parkingflow/parking_flow_app/internal/core/ports/providers"
	portsrepo "github.com/parkingflow/parking_flow_app/internal/core/ports/repositories"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/middleware"
	"github.com/parkingflow/parking_flow_app/internal/utils/exchange"
	"github.com/shopspring/decimal"
)

// paymentService implements the payment preview pipeline: resolve the area,
// validate the interval, pick the rate for the calendar date, fetch historical
// exchange rates and compute the per-currency charge.
type paymentService struct {
	areaRepo     portsrepo.ParkingAreaRepository
	rateProvider portsprov.RateProvider
}

// NewPaymentService creates a new payment preview service.
func NewPaymentService(areaRepo portsrepo.ParkingAreaRepository, rateProvider portsprov.RateProvider) portssvc.PaymentService {
	return &paymentService{
		areaRepo:     areaRepo,
		rateProvider: rateProvider,
	}
}

var _ portssvc.PaymentService = (*paymentService)(nil)

// PreviewPayment computes the charge per target currency for a parking
// session. It is a preview only; no fee record is written here.
func (s *paymentService) PreviewPayment(ctx context.Context, areaID string, startTime, endTime, date time.Time) (domain.PaymentQuote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	area, err := s.areaRepo.FindParkingAreaByID(ctx, areaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load parking area %s: %w", areaID, err)
	}

	totalHours := decimal.NewFromFloat(endTime.Sub(startTime).Hours())
	if totalHours.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: end time must be after start time", apperrors.ErrInvalidDuration)
	}

	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	baseRate := area.WeekdaysHourlyRateUsd
	if isWeekend {
		baseRate = area.WeekendHourlyRateUsd
	}

	// A discount above 100 is not rejected here; it flows through as a
	// negative factor the same way it was stored.
	discountFactor := decimal.NewFromInt(1).
		Sub(decimal.NewFromFloat(area.DiscountPercentage).Div(decimal.NewFromInt(100)))

	snapshot, err := s.rateProvider.FetchHistorical(ctx, date)
	if err != nil {
		middleware.RateFetchesTotal.WithLabelValues("error").Inc()
		logger.Error("Failed to fetch exchange rates for payment preview",
			slog.String("parking_area_id", areaID),
			slog.String("date", date.Format("2006-01-02")),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: could not fetch rates for %s", apperrors.ErrRatesUnavailable, date.Format("2006-01-02"))
	}
	middleware.RateFetchesTotal.WithLabelValues("success").Inc()

	quote, err := s.buildQuote(baseRate, totalHours, discountFactor, snapshot)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSnapshot) {
			// The snapshot arrived but is unusable (success=false or empty);
			// to the caller this is the same as not having rates at all.
			logger.Error("Unusable exchange rate snapshot",
				slog.String("parking_area_id", areaID),
				slog.String("date", date.Format("2006-01-02")),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: snapshot for %s is unusable", apperrors.ErrRatesUnavailable, date.Format("2006-01-02"))
		}
		logger.Error("Payment preview calculation failed",
			slog.String("parking_area_id", areaID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Payment preview computed",
		slog.String("parking_area_id", areaID),
		slog.Bool("weekend_rate", isWeekend),
		slog.Int("currencies", len(quote)))
	return quote, nil
}

// buildQuote converts the base rate and charges each currency. The recover is
// a boundary guard only; the calculation functions do not panic on well-formed
// input.
func (s *paymentService) buildQuote(baseRate, totalHours, discountFactor decimal.Decimal, snapshot *domain.RateSnapshot) (quote domain.PaymentQuote, err error) {
	defer func() {
		if r := recover(); r != nil {
			quote = nil
			err = fmt.Errorf("%w: %v", apperrors.ErrCalculation, r)
		}
	}()

	converted, err := exchange.ConvertToCurrencies(baseRate, snapshot)
	if err != nil {
		return nil, err
	}

	quote = make(domain.PaymentQuote, len(converted))
	for code := range converted {
		quote[code] = exchange.Charge(baseRate, snapshot.Rate(code), totalHours, discountFactor)
	}
	return quote, nil
}
