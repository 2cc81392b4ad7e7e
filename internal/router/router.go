// Package router wires the HTTP surface: middleware order and every route
// exposed by the registry.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wamalwa/event-ticketing-registry/internal/handler"
)

// Handlers groups everything the router registers.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Event        *handler.EventHandler
	Ticket       *handler.TicketHandler
	User         *handler.UserHandler
	Member       *handler.MemberHandler
	Contribution *handler.ContributionHandler
	Investment   *handler.InvestmentHandler
	Group        *handler.GroupHandler
}

// Register mounts all routes on e.  Read middleware (cache) is applied per
// group by the caller; this function only declares paths.
func Register(e *echo.Echo, h Handlers) {
	e.GET("/healthz", h.Health.Check)

	v1 := e.Group("/v1")

	v1.POST("/auth/token", h.Auth.Token)

	v1.POST("/events", h.Event.Create)
	v1.GET("/events", h.Event.List)
	v1.GET("/events/:id", h.Event.Get)
	v1.PATCH("/events/:id", h.Event.Update)
	v1.GET("/events/:id/tickets", h.Ticket.ForEvent)

	v1.POST("/tickets", h.Ticket.Create)
	v1.GET("/tickets", h.Ticket.List)
	v1.GET("/tickets/:id", h.Ticket.Get)

	v1.POST("/users", h.User.Create)
	v1.GET("/users", h.User.List)
	v1.GET("/users/:id", h.User.Get)
	v1.PATCH("/users/:id", h.User.Update)
	v1.GET("/users/:id/events", h.User.Events)
	v1.GET("/users/:id/tickets", h.User.Tickets)

	v1.POST("/members", h.Member.Create)
	v1.GET("/members", h.Member.List)
	v1.GET("/members/:id", h.Member.Get)
	v1.PATCH("/members/:id", h.Member.Update)
	v1.GET("/members/:id/contributions", h.Member.Contributions)

	v1.POST("/contributions", h.Contribution.Create)
	v1.GET("/contributions", h.Contribution.List)
	v1.GET("/contributions/:id", h.Contribution.Get)

	v1.POST("/investments", h.Investment.Create)
	v1.GET("/investments", h.Investment.List)
	v1.GET("/investments/:id", h.Investment.Get)

	v1.POST("/groups", h.Group.Create)
	v1.GET("/groups", h.Group.List)
	v1.GET("/groups/:id", h.Group.Get)
}
