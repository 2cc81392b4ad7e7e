// Package utils holds small helpers shared across handlers.
package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewAccessToken mints a signed HS256 token whose subject is the caller
// principal.  Used by the development token endpoint; production callers
// bring tokens minted by their own identity provider sharing the secret.
func NewAccessToken(secret, principal string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": principal,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
