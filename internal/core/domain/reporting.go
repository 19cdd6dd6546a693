package domain

import "github.com/shopspring/decimal"

// MonthlyEarnings is the summed USD earnings of one calendar month.
// A month with no fee records produces no MonthlyEarnings at all; the
// aggregator never emits a zero-valued placeholder.
type MonthlyEarnings struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"` // 1-12
	TotalUsd decimal.Decimal `json:"totalUsd"`
}

// DashboardData is the summary served to the dashboard view.
type DashboardData struct {
	TotalParkingAreas            int               `json:"totalParkingAreas"`
	TotalParkingFees             int               `json:"totalParkingFees"`
	TotalParkingAreasActive      int               `json:"totalParkingAreasActive"`
	LastMonthEarningsTotalUsd    decimal.Decimal   `json:"lastMonthEarningsTotalUsd"`
	CurrentMonthEarningsTotalUsd decimal.Decimal   `json:"currentMonthEarningsTotalUsd"`
	ParkingHistoryPayments       []MonthlyEarnings `json:"parkingHistoryPayments"`
}
