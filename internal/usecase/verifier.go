package usecase

import (
	"context"
	"fmt"

	"crypto-copilot/internal/copilot"
	"crypto-copilot/internal/domain/entity"
	"crypto-copilot/internal/domain/repository"
)

// TokenVerifier is the unsigned variant: any request carrying a GitHub
// token is trusted without cryptographic proof of origin.
type TokenVerifier struct{}

func NewTokenVerifier() *TokenVerifier { return &TokenVerifier{} }

func (v *TokenVerifier) Verify(_ context.Context, rawBody []byte, creds entity.Credentials) (entity.VerifiedPayload, error) {
	if len(rawBody) == 0 {
		return entity.VerifiedPayload{}, entity.ErrEmptyBody
	}
	if creds.Token == "" {
		return entity.VerifiedPayload{}, entity.ErrMissingToken
	}
	return parseMessage(rawBody)
}

// SignatureVerifier additionally checks the ECDSA body signature against
// the public key GitHub publishes for the request's key identifier.
type SignatureVerifier struct {
	keys repository.PublicKeySource
}

func NewSignatureVerifier(keys repository.PublicKeySource) *SignatureVerifier {
	return &SignatureVerifier{keys: keys}
}

func (v *SignatureVerifier) Verify(ctx context.Context, rawBody []byte, creds entity.Credentials) (entity.VerifiedPayload, error) {
	if len(rawBody) == 0 {
		return entity.VerifiedPayload{}, entity.ErrEmptyBody
	}
	if creds.Token == "" {
		return entity.VerifiedPayload{}, entity.ErrMissingToken
	}
	if creds.Signature == "" || creds.KeyIdentifier == "" {
		return entity.VerifiedPayload{Valid: false}, nil
	}

	keyPEM, err := v.keys.PublicKey(ctx, creds.Token, creds.KeyIdentifier)
	if err != nil {
		return entity.VerifiedPayload{}, fmt.Errorf("resolve signing key: %w", err)
	}

	// A signature that does not check out is an authentication outcome,
	// not a processing failure.
	ok, err := copilot.VerifySignature(rawBody, keyPEM, creds.Signature)
	if err != nil || !ok {
		return entity.VerifiedPayload{Valid: false}, nil
	}
	return parseMessage(rawBody)
}

func parseMessage(rawBody []byte) (entity.VerifiedPayload, error) {
	payload, err := copilot.ParsePayload(rawBody)
	if err != nil {
		return entity.VerifiedPayload{}, fmt.Errorf("%w: %v", entity.ErrMalformedPayload, err)
	}
	return entity.VerifiedPayload{Valid: true, Message: payload.LatestUserMessage()}, nil
}
