// Package token issues and verifies stateless HS256 session tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/storefront/internal/domain"
)

// DefaultLifetime is how long an issued token stays valid.
const DefaultLifetime = 90 * 24 * time.Hour

// Claims is the verified content of a session token.
type Claims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type sessionClaims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a single process-wide secret.
type Service struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewService creates a token Service. A non-positive lifetime falls back to
// DefaultLifetime.
func NewService(secret string, lifetime time.Duration) *Service {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// WithClock returns a copy of s that reads the current time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

// Issue returns a signed token for userID that expires after the configured
// lifetime.
func (s *Service) Issue(userID int64) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString. Every failure is
// reported as domain.ErrInvalidToken wrapping the cause.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, errors.New("missing user id"))
	}

	out := &Claims{
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
