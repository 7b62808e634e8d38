package copilot

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
)

// VerifySignature reports whether signature is a valid base64 ASN.1 ECDSA
// signature of body under the PEM-encoded public key GitHub published for
// the agent. A decodable-but-wrong signature yields (false, nil); a key or
// encoding problem yields an error.
func VerifySignature(body []byte, publicKeyPEM, signature string) (bool, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return false, errors.New("public key is not valid PEM")
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}
	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return false, errors.New("public key is not an ECDSA key")
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}

	digest := sha256.Sum256(body)
	return ecdsa.VerifyASN1(key, digest[:], sig), nil
}
