// Package auth implements the authentication core: password hashing,
// stateless JWT issuance and verification, and role-based authorization.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leoAraujo20/lu-estilo-api/internal/common"
)

// Claims is the token payload: the registered claims plus the account role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// SigningMethod resolves a configured algorithm name (e.g. "HS256") to a
// jwt.SigningMethod. Unknown names yield common.ErrUnknownAlgorithm.
func SigningMethod(name string) (jwt.SigningMethod, error) {
	switch name {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, common.ErrUnknownAlgorithm
}

// GenerateToken issues a signed token for userID with the given role.
// The token carries subject, issued-at, and expiry (now + ttl); it is fully
// self-contained, so no server-side state is needed to validate it later.
func GenerateToken(userID string, role Role, secretKey []byte, method jwt.SigningMethod, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: string(role),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken validates signature and expiry and decodes the claims into a
// Principal. The credential store is never consulted: a deleted account's
// token stays valid until it expires.
//
// Failure modes:
//   - common.ErrTokenExpired when the expiry has passed
//   - common.ErrUnknownAlgorithm when the token's signing method differs
//     from the configured one
//   - common.ErrMalformedToken for everything else (bad signature,
//     undecodable structure, unknown role claim)
func VerifyToken(tokenString string, secretKey []byte, method jwt.SigningMethod) (*Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != method.Alg() {
			return nil, common.ErrUnknownAlgorithm
		}
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownAlgorithm):
			return nil, common.ErrUnknownAlgorithm
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrMalformedToken
		}
	}

	if !token.Valid {
		return nil, common.ErrMalformedToken
	}

	role, err := ParseRole(claims.Role)
	if err != nil {
		return nil, common.ErrMalformedToken
	}

	return &Principal{UserID: claims.Subject, Role: role}, nil
}
