// Package auth issues and validates operator tokens for the query API.
package auth

import (
	"time"

	"proximity/config"
	"proximity/internal/domain/service"
	"proximity/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultIssuer   = "proximity"
	defaultTokenTTL = 12 * time.Hour
)

// operatorClaims is the JWT body of an operator token
type operatorClaims struct {
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// jwtService signs operator tokens with a shared HMAC secret.
type jwtService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  service.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.AuthConfig, clock service.Clock) (service.TokenService, error) {
	if cfg == nil || cfg.OperatorSecret == "" {
		return nil, errors.New("operator secret must be provided")
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.OperatorSecret),
		issuer: issuer,
		ttl:    ttl,
		clock:  clock,
	}, nil
}

// IssueOperatorToken signs a token for subject carrying the given scopes.
func (s *jwtService) IssueOperatorToken(subject string, scopes []string) (string, error) {
	now := s.clock.Now()
	claims := operatorClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign operator token")
	}

	return signed, nil
}

// ValidateOperatorToken checks signature, issuer and expiry.
func (s *jwtService) ValidateOperatorToken(tokenString string) (*service.OperatorToken, error) {
	claims := &operatorClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid operator token")
	}

	token := &service.OperatorToken{
		Subject: claims.Subject,
		Scopes:  claims.Scopes,
	}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}

	return token, nil
}
