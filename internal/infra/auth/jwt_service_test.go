package auth

import (
	"testing"
	"time"

	"proximity/config"
	"proximity/internal/domain/service"
	"proximity/internal/infra/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, now time.Time) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.AuthConfig{
		OperatorSecret: "test_operator_secret_key_very_long_for_testing",
		TokenTTL:       time.Hour,
	}, clock.Fixed(now))
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestService(t, issuedAt)

	token, err := svc.IssueOperatorToken("ops@example.com", []string{service.ScopeLedgerRead})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateOperatorToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, []string{service.ScopeLedgerRead}, claims.Scopes)
	assert.True(t, claims.ExpiresAt.Equal(issuedAt.Add(time.Hour)))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	token, err := newTestService(t, issuedAt).IssueOperatorToken("ops", nil)
	require.NoError(t, err)

	later := newTestService(t, issuedAt.Add(2*time.Hour))
	claims, err := later.ValidateOperatorToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := newTestService(t, issuedAt).IssueOperatorToken("ops", nil)
	require.NoError(t, err)

	other, err := NewJWTService(&config.AuthConfig{OperatorSecret: "another_secret"}, clock.Fixed(issuedAt))
	require.NoError(t, err)

	_, err = other.ValidateOperatorToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	token, err := newTestService(t, issuedAt).IssueOperatorToken("ops", nil)
	require.NoError(t, err)

	other, err := NewJWTService(&config.AuthConfig{
		OperatorSecret: "test_operator_secret_key_very_long_for_testing",
		Issuer:         "someone-else",
	}, clock.Fixed(issuedAt))
	require.NoError(t, err)

	_, err = other.ValidateOperatorToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := newTestService(t, issuedAt).ValidateOperatorToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.AuthConfig{}, clock.New())
	assert.Error(t, err)

	_, err = NewJWTService(nil, clock.New())
	assert.Error(t, err)
}
