// Package queue publishes and consumes ticket lifecycle events over
// RabbitMQ so downstream workers (mailers, analytics) see every issued
// ticket without coupling to the request path.
package queue

import "time"

// TicketQueue is the durable queue ticket events are published to.
const TicketQueue = "ticket.created"

// TicketCreatedEvent is the message body published after a ticket is
// persisted.
type TicketCreatedEvent struct {
	TicketID   string    `json:"ticketId"`
	EventID    string    `json:"eventId"`
	EventName  string    `json:"eventName"`
	UserID     string    `json:"userId"`
	UserEmail  string    `json:"userEmail"`
	Principal  string    `json:"principal"`
	OccurredAt time.Time `json:"occurredAt"`
}
