package auth

import (
	"fmt"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt. A new random salt is
// generated on every call, so hashing the same password twice yields two
// different strings that both verify. The plaintext must never be stored or
// logged.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext reproduces hashed using the salt
// embedded in it. A mismatch is a normal false result, not an error.
func VerifyPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
