package domain

import "github.com/shopspring/decimal"

// RateSnapshot is a point-in-time set of exchange rates quoted against a fixed
// base currency: 1 Base = Rate * target. It is built once per provider call
// and never mutated.
//
// Success mirrors the provider's own payload flag: a snapshot can arrive over
// HTTP 200 and still be unusable. Callers must check Success before converting.
type RateSnapshot struct {
	Success   bool                       `json:"success"`
	Timestamp int64                      `json:"timestamp"`
	Base      string                     `json:"base"`
	Date      string                     `json:"date"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// Rate returns the rate for a currency code, or zero when the snapshot does
// not carry that currency. A missing rate is not an error at this level.
func (s RateSnapshot) Rate(currencyCode string) decimal.Decimal {
	rate, ok := s.Rates[currencyCode]
	if !ok {
		return decimal.Zero
	}
	return rate
}
