package dto

import (
	"time"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateParkingAreaRequest defines the data needed to create a parking area.
type CreateParkingAreaRequest struct {
	Name                  string          `json:"name" binding:"required"`
	Location              string          `json:"location"`
	WeekdaysHourlyRateUsd decimal.Decimal `json:"weekdaysHourlyRateUsd"`
	WeekendHourlyRateUsd  decimal.Decimal `json:"weekendHourlyRateUsd"`
	DiscountPercentage    float64         `json:"discountPercentage" binding:"gte=0,lte=100"`
	Description           string          `json:"description"`
	IsActive              bool            `json:"isActive"`
}

// UpdateParkingAreaRequest defines the updatable fields of a parking area.
// Pointer fields distinguish "leave unchanged" from an explicit new value, so
// updates are a field merge rather than a blind overwrite.
type UpdateParkingAreaRequest struct {
	Name                  *string          `json:"name,omitempty"`
	Location              *string          `json:"location,omitempty"`
	WeekdaysHourlyRateUsd *decimal.Decimal `json:"weekdaysHourlyRateUsd,omitempty"`
	WeekendHourlyRateUsd  *decimal.Decimal `json:"weekendHourlyRateUsd,omitempty"`
	DiscountPercentage    *float64         `json:"discountPercentage,omitempty"`
	Description           *string          `json:"description,omitempty"`
	IsActive              *bool            `json:"isActive,omitempty"`
}

// ParkingAreaResponse defines the data returned for a parking area.
type ParkingAreaResponse struct {
	ParkingAreaID         string          `json:"parkingAreaID"`
	Name                  string          `json:"name"`
	Location              string          `json:"location"`
	WeekdaysHourlyRateUsd decimal.Decimal `json:"weekdaysHourlyRateUsd"`
	WeekendHourlyRateUsd  decimal.Decimal `json:"weekendHourlyRateUsd"`
	DiscountPercentage    float64         `json:"discountPercentage"`
	Description           string          `json:"description,omitempty"`
	IsActive              bool            `json:"isActive"`
	CreatedAt             time.Time       `json:"createdAt"`
	LastUpdatedAt         time.Time       `json:"lastUpdatedAt"`
}

// ToParkingAreaResponse converts a domain.ParkingArea to its response DTO.
func ToParkingAreaResponse(area *domain.ParkingArea) ParkingAreaResponse {
	return ParkingAreaResponse{
		ParkingAreaID:         area.ParkingAreaID,
		Name:                  area.Name,
		Location:              area.Location,
		WeekdaysHourlyRateUsd: area.WeekdaysHourlyRateUsd,
		WeekendHourlyRateUsd:  area.WeekendHourlyRateUsd,
		DiscountPercentage:    area.DiscountPercentage,
		Description:           area.Description,
		IsActive:              area.IsActive,
		CreatedAt:             area.CreatedAt,
		LastUpdatedAt:         area.LastUpdatedAt,
	}
}

// ToListParkingAreaResponse converts a slice of areas to response DTOs.
func ToListParkingAreaResponse(areas []domain.ParkingArea) []ParkingAreaResponse {
	res := make([]ParkingAreaResponse, len(areas))
	for i, area := range areas {
		res[i] = ToParkingAreaResponse(&area)
	}
	return res
}
