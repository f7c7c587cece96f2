package domain

import (
	"context"
	"strings"
	"time"
)

// Identity is the caller as established by a verified bearer token.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// TokenVerifier verifies a bearer token with the identity provider and returns the caller.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// TokenIssuer issues tokens for an identity. Used for local development and tests;
// production tokens come from the identity provider.
type TokenIssuer interface {
	Issue(uid, email string, expiry time.Duration) (string, error)
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail reports whether a and b name the same identity.
func SameEmail(a, b string) bool {
	a, b = NormalizeEmail(a), NormalizeEmail(b)
	return a != "" && a == b
}
