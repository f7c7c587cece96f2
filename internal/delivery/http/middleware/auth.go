package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	h "civitas/internal/delivery/http/helpers"
	"civitas/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the verified caller identity.
func SetIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the verified caller identity, if present.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

// Authenticate checks the raw Authorization header value and asks the verifier
// for the caller identity. A missing or malformed header yields
// ErrUnauthenticated; a token the verifier rejects yields ErrForbidden.
func Authenticate(ctx context.Context, verifier domain.TokenVerifier, header string) (domain.Identity, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return domain.Identity{}, fmt.Errorf("%w: no token provided", domain.ErrUnauthenticated)
	}
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return domain.Identity{}, fmt.Errorf("%w: invalid authorization format", domain.ErrUnauthenticated)
	}
	id, err := verifier.Verify(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}
	return id, nil
}

// RequireAuth returns a wrapper that runs Authenticate and sets the identity in the request context.
// Unauthenticated callers get 401, rejected tokens get 403, and next is not called.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id, err := Authenticate(r.Context(), verifier, r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, err.Error())
					return
				}
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
				return
			}
			next(w, r.WithContext(SetIdentity(r.Context(), id)))
		}
	}
}
