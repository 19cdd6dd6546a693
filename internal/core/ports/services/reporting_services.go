package services

import (
	"context"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// ReportingService aggregates persisted fee records into earnings reports.
type ReportingService interface {
	// TotalForMonth sums the USD earnings of one calendar month. It returns
	// (nil, nil) when no fee records fall in that month; absence is not an
	// error and not a zero total.
	TotalForMonth(ctx context.Context, month, year int) (*domain.MonthlyEarnings, error)

	// SeriesForRange sums USD earnings per calendar month over the inclusive
	// month range, ordered descending by year then month. Months without
	// records are omitted. A failed read yields apperrors.ErrAggregationUnavailable
	// and no partial series.
	SeriesForRange(ctx context.Context, fromMonth, fromYear, toMonth, toYear int) ([]domain.MonthlyEarnings, error)

	// Dashboard assembles the summary for the dashboard view: entity counts
	// plus current-month, previous-month and six-month earnings.
	Dashboard(ctx context.Context) (*domain.DashboardData, error)
}
