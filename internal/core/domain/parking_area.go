package domain

import "github.com/shopspring/decimal"

// ParkingArea represents a managed parking lot with its pricing policy.
// Hourly rates are quoted in USD; the payment preview converts them into the
// configured target currencies on demand.
type ParkingArea struct {
	ParkingAreaID         string          `json:"parkingAreaID"`
	Name                  string          `json:"name"`
	Location              string          `json:"location"`
	WeekdaysHourlyRateUsd decimal.Decimal `json:"weekdaysHourlyRateUsd"`
	WeekendHourlyRateUsd  decimal.Decimal `json:"weekendHourlyRateUsd"`
	DiscountPercentage    float64         `json:"discountPercentage"`
	Description           string          `json:"description,omitempty"`
	IsActive              bool            `json:"isActive"`
	AuditFields
}
