package repository

import (
	"context"

	"crypto-copilot/internal/domain/entity"
)

// PriceSource is read-only access to the external quoting provider.
type PriceSource interface {
	// CurrentPrice returns the USD spot price. ok is false when the provider
	// answered but carries no quote for the currency.
	CurrentPrice(ctx context.Context, currency entity.Currency) (price float64, ok bool, err error)
	History(ctx context.Context, currency entity.Currency, days int) (entity.PriceSeries, error)
}

// Verifier authenticates an inbound request and extracts its payload.
type Verifier interface {
	Verify(ctx context.Context, rawBody []byte, creds entity.Credentials) (entity.VerifiedPayload, error)
}

// PublicKeySource resolves provider signing keys by identifier.
type PublicKeySource interface {
	PublicKey(ctx context.Context, token, keyID string) (pemKey string, err error)
}

// RequestLimiter caps how often a caller token may invoke the agent.
type RequestLimiter interface {
	Allow(ctx context.Context, token string) (bool, error)
}
