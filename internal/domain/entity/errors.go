package entity

import "errors"

// Standard domain errors
var (
	ErrEmptyBody          = errors.New("request body is empty")
	ErrMissingToken       = errors.New("missing GitHub token")
	ErrMalformedPayload   = errors.New("request payload is malformed")
	ErrPriceUnavailable   = errors.New("unable to retrieve the current price")
	ErrHistoryUnavailable = errors.New("unable to retrieve the historical data")
	ErrRateLimitExceeded  = errors.New("rate limit exceeded: too many requests for this token")
)
