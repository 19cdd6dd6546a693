package dto

import (
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentPreviewResponse maps each target currency code to the previewed
// charge for the session, rounded to two decimal places.
type PaymentPreviewResponse map[string]decimal.Decimal

// ToPaymentPreviewResponse converts a domain.PaymentQuote to its response DTO.
func ToPaymentPreviewResponse(quote domain.PaymentQuote) PaymentPreviewResponse {
	res := make(PaymentPreviewResponse, len(quote))
	for code, amount := range quote {
		res[code] = amount
	}
	return res
}
