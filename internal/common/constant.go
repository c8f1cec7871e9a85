// Package common contains constants and small helpers shared by the
// contactdesk client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on protected requests.
	AuthorizationHeaderName = "Authorization"
	// BearerScheme prefixes the access token in the Authorization header.
	BearerScheme = "Bearer"
	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"
)

// Local storage keys. The names match what the web client kept in
// window.localStorage so an exported store stays readable by both.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	// LegacyAuthTokenKey is written by email verification only.
	LegacyAuthTokenKey = "auth_token"
	// StorageSaltKey holds the salt for the optional storage key.
	StorageSaltKey = "storage_salt"
)
