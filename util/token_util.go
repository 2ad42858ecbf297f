// api/util/token_util.go
package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	food_errors "github.com/EivorRrz/restro/api/errors"
)

const DefaultTokenLifetime = 7 * 24 * time.Hour

// TokenClaims are the claims carried by an access token. Subject is the user id.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// ExpiresAtTime returns the absolute expiry, or the zero time when unset.
func (c *TokenClaims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

type TokenUtil struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

type TokenOption func(*TokenUtil)

func WithTokenClock(now func() time.Time) TokenOption {
	return func(t *TokenUtil) { t.now = now }
}

func NewTokenUtil(secret, issuer string, lifetime time.Duration, opts ...TokenOption) *TokenUtil {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	t := &TokenUtil{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
		now:      time.Now,
		// expiry is checked by the caller against the blacklist first
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TokenUtil) Now() time.Time {
	return t.now()
}

func (t *TokenUtil) Lifetime() time.Duration {
	return t.lifetime
}

// Issue signs a token for userID valid for the configured lifetime.
func (t *TokenUtil) Issue(userID string) (string, *TokenClaims, error) {
	now := t.now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.issuer,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Parse verifies the signature and algorithm of raw and returns its claims.
// It does not check expiry; see Expired.
func (t *TokenUtil) Parse(raw string) (*TokenClaims, error) {
	if raw == "" {
		return nil, food_errors.ErrMissingToken
	}
	claims := &TokenClaims{}
	token, err := t.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, food_errors.NewAuthError(food_errors.AuthInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, food_errors.NewAuthError(food_errors.AuthInvalidToken, errors.New("token is missing required claims"))
	}
	if t.issuer != "" && claims.Issuer != t.issuer {
		return nil, food_errors.NewAuthError(food_errors.AuthInvalidToken, jwt.ErrTokenInvalidIssuer)
	}
	return claims, nil
}

// Expired reports whether claims are past their expiry at the current time.
func (t *TokenUtil) Expired(claims *TokenClaims) bool {
	return !t.now().Before(claims.ExpiresAtTime())
}

// Remaining is the lifetime left on claims, never negative.
func (t *TokenUtil) Remaining(claims *TokenClaims) time.Duration {
	d := claims.ExpiresAtTime().Sub(t.now())
	if d < 0 {
		return 0
	}
	return d
}
