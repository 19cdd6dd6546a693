package dto

import (
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyEarningsResponse is one month of summed USD earnings.
type MonthlyEarningsResponse struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	TotalUsd decimal.Decimal `json:"totalUsd"`
}

// DashboardResponse is the summary payload for the dashboard view.
type DashboardResponse struct {
	TotalParkingAreas            int                       `json:"totalParkingAreas"`
	TotalParkingFees             int                       `json:"totalParkingFees"`
	TotalParkingAreasActive      int                       `json:"totalParkingAreasActive"`
	LastMonthEarningsTotalUsd    decimal.Decimal           `json:"lastMonthEarningsTotalUsd"`
	CurrentMonthEarningsTotalUsd decimal.Decimal           `json:"currentMonthEarningsTotalUsd"`
	ParkingHistoryPayments       []MonthlyEarningsResponse `json:"parkingHistoryPayments"`
}

// ToMonthlyEarningsResponse converts a domain earnings series to response DTOs.
func ToMonthlyEarningsResponse(series []domain.MonthlyEarnings) []MonthlyEarningsResponse {
	res := make([]MonthlyEarningsResponse, len(series))
	for i, m := range series {
		res[i] = MonthlyEarningsResponse{Year: m.Year, Month: m.Month, TotalUsd: m.TotalUsd}
	}
	return res
}

// ToDashboardResponse converts domain dashboard data to its response DTO.
func ToDashboardResponse(data *domain.DashboardData) DashboardResponse {
	return DashboardResponse{
		TotalParkingAreas:            data.TotalParkingAreas,
		TotalParkingFees:             data.TotalParkingFees,
		TotalParkingAreasActive:      data.TotalParkingAreasActive,
		LastMonthEarningsTotalUsd:    data.LastMonthEarningsTotalUsd,
		CurrentMonthEarningsTotalUsd: data.CurrentMonthEarningsTotalUsd,
		ParkingHistoryPayments:       ToMonthlyEarningsResponse(data.ParkingHistoryPayments),
	}
}
