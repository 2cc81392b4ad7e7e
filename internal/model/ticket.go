package model

// Ticket is one reservation: a link between an event and a user.  Tickets
// are never deleted or updated after creation.
type Ticket struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
}

// TicketPayload names the event and user a ticket should be issued for.
type TicketPayload struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
}

// TicketDetail is the denormalized projection returned by ticket creation
// and the ticket listing queries: the ticket joined with the event title and
// the holder's contact fields, so the frontend renders rows without extra
// lookups.
type TicketDetail struct {
	ID        string `json:"id"`
	EventID   string `json:"eventId"`
	EventName string `json:"eventName"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`
}
