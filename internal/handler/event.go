package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/middleware"
	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
)

type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(c echo.Context) error {
	var p model.EventPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid event payload")
	}
	ev, err := h.events.Create(c.Request().Context(), p, middleware.PrincipalFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, ev)
}

func (h *EventHandler) Get(c echo.Context) error {
	ev, err := h.events.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) List(c echo.Context) error {
	evs, err := h.events.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, evs)
}

func (h *EventHandler) Update(c echo.Context) error {
	var p model.EventUpdate
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid event payload")
	}
	ev, err := h.events.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ev)
}
