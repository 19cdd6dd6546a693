package exchange_test

import (
	"testing"

	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/parkingflow/parking_flow_app/internal/utils/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(success bool, rates map[string]decimal.Decimal) *domain.RateSnapshot {
	return &domain.RateSnapshot{
		Success: success,
		Base:    "USD",
		Date:    "2024-03-06",
		Rates:   rates,
	}
}

func TestConvertToCurrencies_Success(t *testing.T) {
	snap := snapshot(true, map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.NewFromFloat(0.9),
		"PLN": decimal.NewFromFloat(3.9471),
	})

	result, err := exchange.ConvertToCurrencies(decimal.NewFromInt(10), snap)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.True(t, result["USD"].Equal(decimal.NewFromInt(10)), "USD: got %s", result["USD"])
	assert.True(t, result["EUR"].Equal(decimal.NewFromInt(9)), "EUR: got %s", result["EUR"])
	// 10 * 3.9471 = 39.471 -> 39.47
	assert.True(t, result["PLN"].Equal(decimal.NewFromFloat(39.47)), "PLN: got %s", result["PLN"])
}

func TestConvertToCurrencies_OmitsMissingCurrencies(t *testing.T) {
	snap := snapshot(true, map[string]decimal.Decimal{
		"EUR": decimal.NewFromFloat(0.85),
	})

	result, err := exchange.ConvertToCurrencies(decimal.NewFromInt(100), snap)
	require.NoError(t, err)

	require.Len(t, result, 1)
	_, hasPLN := result["PLN"]
	assert.False(t, hasPLN, "currencies not in the snapshot must be absent, not zero")
	assert.True(t, result["EUR"].Equal(decimal.NewFromInt(85)))
}

func TestConvertToCurrencies_UnsuccessfulSnapshot(t *testing.T) {
	snap := snapshot(false, map[string]decimal.Decimal{
		"EUR": decimal.NewFromFloat(0.9),
	})

	_, err := exchange.ConvertToCurrencies(decimal.NewFromInt(10), snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)
}

func TestConvertToCurrencies_EmptyRates(t *testing.T) {
	_, err := exchange.ConvertToCurrencies(decimal.NewFromInt(10), snapshot(true, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)

	_, err = exchange.ConvertToCurrencies(decimal.NewFromInt(10), snapshot(true, map[string]decimal.Decimal{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)
}

func TestConvertToCurrencies_RoundsHalfAwayFromZero(t *testing.T) {
	snap := snapshot(true, map[string]decimal.Decimal{
		"EUR": decimal.NewFromFloat(0.125),
	})

	result, err := exchange.ConvertToCurrencies(decimal.NewFromInt(1), snap)
	require.NoError(t, err)
	// 0.125 rounds up to 0.13, not to the even 0.12
	assert.True(t, result["EUR"].Equal(decimal.NewFromFloat(0.13)), "got %s", result["EUR"])
}

func TestCharge_Basic(t *testing.T) {
	total := exchange.Charge(
		decimal.NewFromInt(10),
		decimal.NewFromInt(2),
		decimal.NewFromInt(3),
		decimal.NewFromInt(1),
	)
	assert.True(t, total.Equal(decimal.NewFromInt(60)), "got %s", total)
}

func TestCharge_ScalesLinearlyInHours(t *testing.T) {
	baseRate := decimal.NewFromFloat(7.5)
	rate := decimal.NewFromFloat(0.93)
	discount := decimal.NewFromFloat(0.8)

	oneHour := exchange.Charge(baseRate, rate, decimal.NewFromInt(1), discount)
	twoHours := exchange.Charge(baseRate, rate, decimal.NewFromInt(2), discount)

	// 7.5*0.93*0.8 = 5.58 exactly, so doubling stays exact
	assert.True(t, twoHours.Equal(oneHour.Mul(decimal.NewFromInt(2))),
		"1h=%s 2h=%s", oneHour, twoHours)
}

func TestCharge_NoInputValidation(t *testing.T) {
	negative := exchange.Charge(
		decimal.NewFromInt(10),
		decimal.NewFromInt(1),
		decimal.NewFromInt(-2),
		decimal.NewFromInt(1),
	)
	assert.True(t, negative.IsNegative(), "negative hours pass through: got %s", negative)

	zero := exchange.Charge(
		decimal.NewFromInt(10),
		decimal.NewFromInt(1),
		decimal.NewFromInt(2),
		decimal.Zero,
	)
	assert.True(t, zero.IsZero(), "a 100%% discount yields a zero charge: got %s", zero)
}

func TestCharge_RoundsResult(t *testing.T) {
	// 9.99 * 0.9163 * 1.5 * 1 = 13.73074...
	total := exchange.Charge(
		decimal.NewFromFloat(9.99),
		decimal.NewFromFloat(0.9163),
		decimal.NewFromFloat(1.5),
		decimal.NewFromInt(1),
	)
	assert.True(t, total.Equal(decimal.NewFromFloat(13.73)), "got %s", total)
}
