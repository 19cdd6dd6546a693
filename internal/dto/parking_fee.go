package dto

import (
	"time"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentResultPayload is the settled charge carried inside a fee request or response.
type PaymentResultPayload struct {
	AmountUsd decimal.Decimal            `json:"amountUsd"`
	Amounts   map[string]decimal.Decimal `json:"amounts,omitempty"`
}

// CreateParkingFeeRequest defines the data needed to record a parking fee.
type CreateParkingFeeRequest struct {
	ParkingAreaID string               `json:"parkingAreaID" binding:"required"`
	StartTime     time.Time            `json:"startTime" binding:"required"`
	EndTime       time.Time            `json:"endTime" binding:"required"`
	ParkingDate   time.Time            `json:"parkingDate" binding:"required"`
	PaymentResult PaymentResultPayload `json:"paymentResult" binding:"required"`
}

// UpdateParkingFeeRequest defines the updatable fields of a parking fee.
type UpdateParkingFeeRequest struct {
	ParkingAreaID *string               `json:"parkingAreaID,omitempty"`
	StartTime     *time.Time            `json:"startTime,omitempty"`
	EndTime       *time.Time            `json:"endTime,omitempty"`
	ParkingDate   *time.Time            `json:"parkingDate,omitempty"`
	PaymentResult *PaymentResultPayload `json:"paymentResult,omitempty"`
}

// ParkingFeeResponse defines the data returned for a parking fee.
type ParkingFeeResponse struct {
	ParkingFeeID  string               `json:"parkingFeeID"`
	ParkingAreaID string               `json:"parkingAreaID"`
	StartTime     time.Time            `json:"startTime"`
	EndTime       time.Time            `json:"endTime"`
	ParkingDate   time.Time            `json:"parkingDate"`
	PaymentResult PaymentResultPayload `json:"paymentResult"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToParkingFeeResponse converts a domain.ParkingFee to its response DTO.
func ToParkingFeeResponse(fee *domain.ParkingFee) ParkingFeeResponse {
	return ParkingFeeResponse{
		ParkingFeeID:  fee.ParkingFeeID,
		ParkingAreaID: fee.ParkingAreaID,
		StartTime:     fee.StartTime,
		EndTime:       fee.EndTime,
		ParkingDate:   fee.ParkingDate,
		PaymentResult: PaymentResultPayload{
			AmountUsd: fee.PaymentResult.AmountUsd,
			Amounts:   fee.PaymentResult.Amounts,
		},
		CreatedAt:     fee.CreatedAt,
		LastUpdatedAt: fee.LastUpdatedAt,
	}
}

// ToListParkingFeeResponse converts a slice of fees to response DTOs.
func ToListParkingFeeResponse(fees []domain.ParkingFee) []ParkingFeeResponse {
	res := make([]ParkingFeeResponse, len(fees))
	for i, fee := range fees {
		res[i] = ToParkingFeeResponse(&fee)
	}
	return res
}
