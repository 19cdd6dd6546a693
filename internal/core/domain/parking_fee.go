package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentResult holds the settled charge of a parking session. AmountUsd is
// the canonical figure used by reporting; Amounts carries the per-currency
// breakdown shown to the driver at payment time.
type PaymentResult struct {
	AmountUsd decimal.Decimal            `json:"amountUsd"`
	Amounts   map[string]decimal.Decimal `json:"amounts,omitempty"`
}

// ParkingFee is a persisted record of a paid parking session.
type ParkingFee struct {
	ParkingFeeID  string        `json:"parkingFeeID"`
	ParkingAreaID string        `json:"parkingAreaID"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	ParkingDate   time.Time     `json:"parkingDate"`
	PaymentResult PaymentResult `json:"paymentResult"`
	AuditFields
}
