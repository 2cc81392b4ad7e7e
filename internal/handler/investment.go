package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
)

type InvestmentHandler struct {
	investments *service.InvestmentService
}

func NewInvestmentHandler(investments *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investments: investments}
}

func (h *InvestmentHandler) Create(c echo.Context) error {
	var p model.InvestmentPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid investment payload")
	}
	inv, err := h.investments.Create(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *InvestmentHandler) Get(c echo.Context) error {
	inv, err := h.investments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *InvestmentHandler) List(c echo.Context) error {
	invs, err := h.investments.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invs)
}
