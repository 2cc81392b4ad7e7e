package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/middleware"
	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/queue"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
)

// TicketPublisher is the slice of queue.Publisher the handler needs; nil
// disables publishing.
type TicketPublisher interface {
	PublishTicketCreated(ctx context.Context, ev queue.TicketCreatedEvent) error
}

type TicketHandler struct {
	tickets   *service.TicketService
	publisher TicketPublisher
}

func NewTicketHandler(tickets *service.TicketService, publisher TicketPublisher) *TicketHandler {
	return &TicketHandler{tickets: tickets, publisher: publisher}
}

func (h *TicketHandler) Create(c echo.Context) error {
	var p model.TicketPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid ticket payload")
	}
	detail, err := h.tickets.CreateTicket(c.Request().Context(), p.EventID, p.UserID)
	if err != nil {
		return writeError(c, err)
	}

	// The ticket is already persisted; a publish failure is logged by the
	// publisher and must not fail the request.
	if h.publisher != nil {
		_ = h.publisher.PublishTicketCreated(c.Request().Context(), queue.TicketCreatedEvent{
			TicketID:   detail.ID,
			EventID:    detail.EventID,
			EventName:  detail.EventName,
			UserID:     detail.UserID,
			UserEmail:  detail.UserEmail,
			Principal:  middleware.PrincipalFrom(c),
			OccurredAt: time.Now().UTC(),
		})
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *TicketHandler) Get(c echo.Context) error {
	t, err := h.tickets.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) List(c echo.Context) error {
	ts, err := h.tickets.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}

// ForEvent lists the tickets issued on an event, joined with their holders.
func (h *TicketHandler) ForEvent(c echo.Context) error {
	ts, err := h.tickets.TicketsForEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}
