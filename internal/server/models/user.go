// Package models defines the persisted entities of the Lu Estilo API and the
// filter values used for listing them.
package models

import (
	"time"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/auth"
)

// User is an account that can authenticate against the API. PasswordHash is
// an opaque bcrypt string; the plaintext is never stored.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         auth.Role
	CreatedAt    time.Time
}
