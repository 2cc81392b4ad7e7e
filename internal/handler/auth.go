package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/utils"
)

// AuthHandler mints development tokens.  The registry does not manage
// accounts; this endpoint exists so local frontends can obtain a principal
// without standing up an identity provider.
type AuthHandler struct {
	secret string
	ttl    time.Duration
}

func NewAuthHandler(secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{secret: secret, ttl: ttl}
}

type tokenRequest struct {
	Principal string `json:"principal"`
}

func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid token request")
	}
	if req.Principal == "" {
		return badRequest(c, "principal is required")
	}
	tok, err := utils.NewAccessToken(h.secret, req.Principal, h.ttl)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":      tok,
		"expires_in": int(h.ttl / time.Second),
	})
}
