package entity

// Credentials are the authentication headers captured from an inbound
// request. Signature and KeyIdentifier are only set by signing clients.
type Credentials struct {
	Token         string // x-github-token
	Signature     string // github-public-key-signature
	KeyIdentifier string // github-public-key-identifier
}

// VerifiedPayload is the outcome of request verification. Valid is false
// when authentication failed; Message holds the latest user-authored prompt
// once verification succeeds.
type VerifiedPayload struct {
	Valid   bool
	Message string
}
