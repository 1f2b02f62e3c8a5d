// Package common contains shared constants and sentinel errors used across
// the BillBreak client components.
package common

// Outbound HTTP header names.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the persisted session triple. They match what the mobile client
// writes so a shared device store stays readable by both.
const (
	UserStorageKey    = "user"
	SessionStorageKey = "authSession"
	TokenStorageKey   = "authToken"
)
