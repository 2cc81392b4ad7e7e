// Package middleware contains the HTTP middleware applied by the router:
// caller identity resolution, the Redis response cache and the token-bucket
// rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalKey is the context key handlers read the caller identity from.
const principalKey = "principal"

// Guest is the principal recorded when a request carries no token.
const Guest = "guest"

// CallerPrincipal resolves the caller identity for every request.  A valid
// Bearer token contributes its subject claim as the principal; requests
// without an Authorization header proceed as Guest, since the registry
// records callers but does not gate on them.  A header that is present but
// invalid is rejected so a misconfigured frontend fails loudly instead of
// silently writing guest-attributed records.
func CallerPrincipal(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				c.Set(principalKey, Guest)
				return next(c)
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "malformed authorization header"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			principal := Guest
			if sub, ok := claims["sub"].(string); ok && sub != "" {
				principal = sub
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller identity stored by CallerPrincipal,
// falling back to Guest when the middleware did not run.
func PrincipalFrom(c echo.Context) string {
	if v, ok := c.Get(principalKey).(string); ok && v != "" {
		return v
	}
	return Guest
}
