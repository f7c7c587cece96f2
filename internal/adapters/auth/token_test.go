package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_Issue(t *testing.T) {
	cfg := JWTConfig{Secret: "test-secret", Issuer: "civitas-idp", Audience: "civitas"}
	issuer := NewJWTIssuer(cfg)

	token, err := issuer.Issue("user-123", "U@Example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "civitas-idp", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"civitas"}, claims.Audience)
}

func TestJWTVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	cfg := JWTConfig{Secret: "test-secret", Issuer: "civitas-idp", Audience: "civitas"}
	issuer := NewJWTIssuer(cfg)

	sign := func(t *testing.T, claims jwtClaims, secret string) string {
		t.Helper()
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	valid, err := issuer.Issue("uid-1", "alice@x.com", time.Hour)
	require.NoError(t, err)
	expired, err := issuer.Issue("uid-1", "alice@x.com", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		wantEmail string
		wantUID   string
		wantErr   string
	}{
		{name: "valid token", token: valid, wantEmail: "alice@x.com", wantUID: "uid-1"},
		{name: "expired token", token: expired, wantErr: "expired"},
		{name: "malformed token", token: "not-a-jwt", wantErr: "malformed"},
		{
			name:    "wrong secret",
			token:   sign(t, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "civitas-idp", Audience: jwt.ClaimStrings{"civitas"}, ExpiresAt: future}, Email: "a@x.com"}, "other"),
			wantErr: "signature",
		},
		{
			name:    "wrong issuer",
			token:   sign(t, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "someone-else", Audience: jwt.ClaimStrings{"civitas"}, ExpiresAt: future}, Email: "a@x.com"}, cfg.Secret),
			wantErr: "issuer",
		},
		{
			name:    "missing expiry",
			token:   sign(t, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "civitas-idp", Audience: jwt.ClaimStrings{"civitas"}}, Email: "a@x.com"}, cfg.Secret),
			wantErr: "exp",
		},
		{
			name:    "missing email claim",
			token:   sign(t, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "civitas-idp", Audience: jwt.ClaimStrings{"civitas"}, ExpiresAt: future}}, cfg.Secret),
			wantErr: "missing email claim",
		},
		{
			name:    "missing subject",
			token:   sign(t, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "civitas-idp", Audience: jwt.ClaimStrings{"civitas"}, ExpiresAt: future}, Email: "a@x.com"}, cfg.Secret),
			wantErr: "missing subject",
		},
	}

	verifier := NewJWTVerifier(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := verifier.Verify(ctx, tt.token)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, id.UID)
			assert.Equal(t, tt.wantEmail, id.Email)
		})
	}
}
