package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
)

type UserHandler struct {
	users   *service.UserService
	tickets *service.TicketService
}

func NewUserHandler(users *service.UserService, tickets *service.TicketService) *UserHandler {
	return &UserHandler{users: users, tickets: tickets}
}

func (h *UserHandler) Create(c echo.Context) error {
	var p model.UserPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid user payload")
	}
	u, err := h.users.Create(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Get(c echo.Context) error {
	u, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) List(c echo.Context) error {
	us, err := h.users.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, us)
}

func (h *UserHandler) Update(c echo.Context) error {
	var p model.UserUpdate
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid user payload")
	}
	u, err := h.users.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Events lists the events the user holds tickets for.
func (h *UserHandler) Events(c echo.Context) error {
	evs, err := h.tickets.EventsForUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, evs)
}

// Tickets lists the user's tickets joined with their events.
func (h *UserHandler) Tickets(c echo.Context) error {
	ts, err := h.tickets.TicketsForUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}
