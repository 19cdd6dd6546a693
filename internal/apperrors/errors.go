package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstreamUnavailable indicates that the exchange-rate provider answered
// with a non-success HTTP status.
var ErrUpstreamUnavailable = errors.New("exchange rate provider unavailable")

// ErrMalformedResponse indicates that the exchange-rate provider's response
// body could not be decoded into a rate snapshot.
var ErrMalformedResponse = errors.New("malformed exchange rate response")

// ErrInvalidSnapshot indicates that a rate snapshot is unusable for conversion:
// either its success flag is false or it carries no rates.
var ErrInvalidSnapshot = errors.New("invalid exchange rate snapshot")

// ErrInvalidDuration indicates a non-positive parking duration.
var ErrInvalidDuration = errors.New("invalid parking duration")

// ErrRatesUnavailable indicates that exchange rates could not be obtained for a
// payment preview. The upstream cause is logged, not surfaced.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// ErrCalculation indicates an unexpected failure while computing a payment preview.
var ErrCalculation = errors.New("payment calculation failed")

// ErrAggregationUnavailable indicates that earnings could not be aggregated
// because the underlying fee records could not be read.
var ErrAggregationUnavailable = errors.New("earnings aggregation unavailable")
