package service

import "time"

// Operator token scopes for the read-only query API
const (
	ScopeLedgerRead   = "ledger:read"
	ScopeGeofenceRead = "geofence:read"
)

// OperatorToken is the verified content of an operator bearer token
type OperatorToken struct {
	Subject   string
	Scopes    []string
	ExpiresAt time.Time
}

// TokenService issues and validates operator tokens
type TokenService interface {
	IssueOperatorToken(subject string, scopes []string) (string, error)
	ValidateOperatorToken(tokenString string) (*OperatorToken, error)
}
