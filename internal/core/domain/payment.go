package domain

import "github.com/shopspring/decimal"

// PaymentQuote is the previewed charge of a parking session per target
// currency, rounded to two decimal places. It is computed on request and
// never persisted; confirming a session writes a ParkingFee instead.
type PaymentQuote map[string]decimal.Decimal
