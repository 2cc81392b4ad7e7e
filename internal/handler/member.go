package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
)

type MemberHandler struct {
	members       *service.MemberService
	contributions *service.ContributionService
}

func NewMemberHandler(members *service.MemberService, contributions *service.ContributionService) *MemberHandler {
	return &MemberHandler{members: members, contributions: contributions}
}

func (h *MemberHandler) Create(c echo.Context) error {
	var p model.MemberPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid member payload")
	}
	m, err := h.members.Create(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MemberHandler) Get(c echo.Context) error {
	m, err := h.members.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MemberHandler) List(c echo.Context) error {
	ms, err := h.members.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ms)
}

func (h *MemberHandler) Update(c echo.Context) error {
	var p model.MemberUpdate
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid member payload")
	}
	m, err := h.members.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Contributions lists the contributions recorded against the member.
func (h *MemberHandler) Contributions(c echo.Context) error {
	cs, err := h.contributions.ListForMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cs)
}
