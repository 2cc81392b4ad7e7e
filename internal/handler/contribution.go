package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
)

type ContributionHandler struct {
	contributions *service.ContributionService
}

func NewContributionHandler(contributions *service.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributions: contributions}
}

func (h *ContributionHandler) Create(c echo.Context) error {
	var p model.ContributionPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid contribution payload")
	}
	cn, err := h.contributions.Create(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cn)
}

func (h *ContributionHandler) Get(c echo.Context) error {
	cn, err := h.contributions.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cn)
}

func (h *ContributionHandler) List(c echo.Context) error {
	cs, err := h.contributions.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cs)
}
