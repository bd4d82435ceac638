package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// TokenClaims is the claim set carried by issued access tokens.
type TokenClaims struct {
	Role        string   `json:"role"`
	Authorities []string `json:"authorities"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, expiring access tokens.
// Tokens are never renewed or revoked server-side; they stay valid until
// natural expiry.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenService builds a TokenService from a base64-encoded HMAC key and a
// TTL in minutes. Both are validated here so a misconfiguration is fatal at
// startup rather than at first login.
func NewTokenService(secretKey string, ttlMinutes int) (*TokenService, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil {
		return nil, fmt.Errorf("auth: decode jwt secret key: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("auth: jwt secret key is empty")
	}
	if ttlMinutes <= 0 {
		return nil, errors.New("auth: jwt expiration must be positive")
	}
	return &TokenService{
		key: key,
		ttl: time.Duration(ttlMinutes) * time.Minute,
		now: time.Now,
	}, nil
}

// Issue signs a token for the subject carrying the role and authority claims.
func (s *TokenService) Issue(subject string, role string, authorities []string) (string, error) {
	issuedAt := s.now()
	claims := TokenClaims{
		Role:        role,
		Authorities: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return token, nil
}

// Validate verifies signature and expiry and returns the claim set. Every
// failure mode collapses to shared.ErrInvalidToken so callers cannot
// distinguish a forged token from an expired one.
func (s *TokenService) Validate(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, shared.ErrInvalidToken
	}
	return claims, nil
}

// ExtractSubject validates the token and returns only its subject.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.Validate(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
