package service

import (
	"time"
)

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for subject that expires ttl from now.
	// A non-positive ttl falls back to DefaultTTL.
	Issue(subject string, ttl time.Duration) (string, error)

	// Validate verifies the signature and expiry and returns the subject.
	// Failures are *errors.TokenError values.
	Validate(token string) (string, error)

	// DefaultTTL is used when no explicit lifetime is requested.
	DefaultTTL() time.Duration

	// LoginTTL is the lifetime of tokens handed out by the login flows.
	LoginTTL() time.Duration
}
