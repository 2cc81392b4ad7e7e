// Package handler exposes the registry operations over HTTP.  Handlers bind
// JSON payloads, call into the service layer and translate tagged errors
// into status codes.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
)

// writeError maps a service error onto the wire.  Tagged errors carry their
// kind and message in the envelope; anything untagged is an internal fault
// and its detail stays out of the response.
func writeError(c echo.Context, err error) error {
	var tagged *model.Error
	if errors.As(err, &tagged) {
		status := http.StatusInternalServerError
		switch tagged.Kind {
		case model.ErrNotFound:
			status = http.StatusNotFound
		case model.ErrInvalidPayload:
			status = http.StatusBadRequest
		case model.ErrPaymentFailed, model.ErrPaymentCompleted:
			status = http.StatusPaymentRequired
		}
		return c.JSON(status, echo.Map{
			"error": echo.Map{"kind": string(tagged.Kind), "message": tagged.Message},
		})
	}
	c.Logger().Errorf("internal error: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": echo.Map{"kind": "Internal", "message": "internal server error"},
	})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error": echo.Map{"kind": string(model.ErrInvalidPayload), "message": msg},
	})
}
