package dto

import (
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSnapshotResponse is one exchange-rate snapshot as quoted by the upstream feed.
type RateSnapshotResponse struct {
	Base      string                     `json:"base"`
	Date      string                     `json:"date"`
	Timestamp int64                      `json:"timestamp"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// ToRateSnapshotResponse converts a domain.RateSnapshot to its response DTO.
func ToRateSnapshotResponse(snapshot *domain.RateSnapshot) RateSnapshotResponse {
	return RateSnapshotResponse{
		Base:      snapshot.Base,
		Date:      snapshot.Date,
		Timestamp: snapshot.Timestamp,
		Rates:     snapshot.Rates,
	}
}
