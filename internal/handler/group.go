package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
)

type GroupHandler struct {
	groups *service.GroupService
}

func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

func (h *GroupHandler) Create(c echo.Context) error {
	var p model.GroupPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid group payload")
	}
	g, err := h.groups.Create(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GroupHandler) Get(c echo.Context) error {
	g, err := h.groups.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GroupHandler) List(c echo.Context) error {
	gs, err := h.groups.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, gs)
}
