package exchange

import (
	"fmt"

	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoundTo is the number of decimal places every monetary result is rounded to.
// decimal.Decimal.Round rounds half away from zero, so 0.125 -> 0.13.
const RoundTo = 2

// ConvertToCurrencies converts a base-currency amount into every currency the
// snapshot carries: amount * rate, rounded to RoundTo places. Currencies absent
// from the snapshot are absent from the result, not zero-filled.
//
// It fails with apperrors.ErrInvalidSnapshot when the snapshot's success flag
// is false or it carries no rates.
func ConvertToCurrencies(amount decimal.Decimal, snapshot *domain.RateSnapshot) (map[string]decimal.Decimal, error) {
	if snapshot == nil || !snapshot.Success || len(snapshot.Rates) == 0 {
		return nil, fmt.Errorf("%w: unsuccessful or empty rate snapshot", apperrors.ErrInvalidSnapshot)
	}

	result := make(map[string]decimal.Decimal, len(snapshot.Rates))
	for currency, rate := range snapshot.Rates {
		result[currency] = amount.Mul(rate).Round(RoundTo)
	}
	return result, nil
}

// Charge computes the final charge for one currency:
// baseRate * rate * totalHours * discountFactor, rounded to RoundTo places.
//
// Inputs are not validated here. A negative totalHours or discountFactor
// yields a negative or zero charge; keeping inputs well-formed is the
// caller's job.
func Charge(baseRate, rate, totalHours, discountFactor decimal.Decimal) decimal.Decimal {
	return baseRate.Mul(rate).Mul(totalHours).Mul(discountFactor).Round(RoundTo)
}
