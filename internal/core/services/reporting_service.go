package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	portsrepo "github.com/parkingflow/parking_flow_app/internal/core/ports/repositories"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// reportingService aggregates persisted fee records into earnings reports.
// The store is only asked to filter by date; grouping and summing happen here,
// in memory, in a single pass.
type reportingService struct {
	areaRepo portsrepo.ParkingAreaRepository
	feeRepo  portsrepo.ParkingFeeRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(areaRepo portsrepo.ParkingAreaRepository, feeRepo portsrepo.ParkingFeeRepository) portssvc.ReportingService {
	return &reportingService{
		areaRepo: areaRepo,
		feeRepo:  feeRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

type monthKey struct {
	year  int
	month int
}

// SeriesForRange sums USD earnings per calendar month over the inclusive
// month range, ordered descending by year then month. Months without records
// are omitted; the series is sparse, not zero-filled.
func (s *reportingService) SeriesForRange(ctx context.Context, fromMonth, fromYear, toMonth, toYear int) ([]domain.MonthlyEarnings, error) {
	from := time.Date(fromYear, time.Month(fromMonth), 1, 0, 0, 0, 0, time.UTC)
	// Exclusive upper bound: first instant of the month after the range.
	to := time.Date(toYear, time.Month(toMonth), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	fees, err := s.feeRepo.ListParkingFeesByDateRange(ctx, from, to)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to read fee records for earnings aggregation",
			slog.String("from", from.Format("2006-01-02")),
			slog.String("to", to.Format("2006-01-02")),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: failed to read fee records", apperrors.ErrAggregationUnavailable)
	}

	totals := make(map[monthKey]decimal.Decimal)
	for _, fee := range fees {
		key := monthKey{year: fee.ParkingDate.Year(), month: int(fee.ParkingDate.Month())}
		totals[key] = totals[key].Add(fee.PaymentResult.AmountUsd)
	}

	series := make([]domain.MonthlyEarnings, 0, len(totals))
	for key, total := range totals {
		series = append(series, domain.MonthlyEarnings{
			Year:     key.year,
			Month:    key.month,
			TotalUsd: total,
		})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year > series[j].Year
		}
		return series[i].Month > series[j].Month
	})

	return series, nil
}

// TotalForMonth sums the USD earnings of one calendar month. It returns
// (nil, nil) when no fee records fall in that month: callers must be able to
// tell "no data" apart from "zero earnings".
func (s *reportingService) TotalForMonth(ctx context.Context, month, year int) (*domain.MonthlyEarnings, error) {
	series, err := s.SeriesForRange(ctx, month, year, month, year)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, nil
	}
	return &series[0], nil
}

// Dashboard assembles the dashboard summary: entity counts plus earnings for
// the current month, the previous month and the last six months. The
// absent-month distinction collapses to zero here, by this caller's choice.
func (s *reportingService) Dashboard(ctx context.Context) (*domain.DashboardData, error) {
	now := time.Now()
	monthAgo := now.AddDate(0, -1, 0)
	sixMonthsAgo := now.AddDate(0, -6, 0)

	totalAreas, err := s.areaRepo.CountParkingAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count parking areas: %w", err)
	}
	activeAreas, err := s.areaRepo.CountActiveParkingAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active parking areas: %w", err)
	}
	totalFees, err := s.feeRepo.CountParkingFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count parking fees: %w", err)
	}

	currentMonth, err := s.TotalForMonth(ctx, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.TotalForMonth(ctx, int(monthAgo.Month()), monthAgo.Year())
	if err != nil {
		return nil, err
	}
	history, err := s.SeriesForRange(ctx, int(sixMonthsAgo.Month()), sixMonthsAgo.Year(), int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}

	data := &domain.DashboardData{
		TotalParkingAreas:            totalAreas,
		TotalParkingFees:             totalFees,
		TotalParkingAreasActive:      activeAreas,
		CurrentMonthEarningsTotalUsd: decimal.Zero,
		LastMonthEarningsTotalUsd:    decimal.Zero,
		ParkingHistoryPayments:       history,
	}
	if currentMonth != nil {
		data.CurrentMonthEarningsTotalUsd = currentMonth.TotalUsd
	}
	if lastMonth != nil {
		data.LastMonthEarningsTotalUsd = lastMonth.TotalUsd
	}

	middleware.GetLoggerFromCtx(ctx).Info("Dashboard data assembled",
		slog.Int("total_areas", totalAreas),
		slog.Int("total_fees", totalFees),
		slog.Int("history_months", len(history)))
	return data, nil
}
