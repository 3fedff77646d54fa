// Package common contains shared constants and sentinel errors used across
// Lu Estilo API components.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is the expected prefix of the Authorization header value.
	BearerPrefix = "Bearer "
)
