package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"civitas/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTConfig holds the settings shared by the issuer and the verifier.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

type jwtIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer returns a TokenIssuer that signs JWTs with HS256 using the configured secret.
func NewJWTIssuer(cfg JWTConfig) domain.TokenIssuer {
	return &jwtIssuer{cfg: cfg}
}

func (i *jwtIssuer) Issue(uid, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    i.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: domain.NormalizeEmail(email),
	}
	if i.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{i.cfg.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier returns a TokenVerifier for HS256 JWTs. Expiry is always required;
// issuer and audience are checked when configured.
func NewJWTVerifier(cfg JWTConfig) domain.TokenVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &jwtVerifier{secret: []byte(cfg.Secret), parser: jwt.NewParser(opts...)}
}

func (v *jwtVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	claims := &jwtClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("verify token: %w", err)
	}
	if claims.Subject == "" {
		return domain.Identity{}, errors.New("verify token: missing subject")
	}
	email := domain.NormalizeEmail(claims.Email)
	if email == "" {
		return domain.Identity{}, errors.New("verify token: missing email claim")
	}
	return domain.Identity{UID: claims.Subject, Email: email}, nil
}
