package model

// User is an attendee record.  Tickets is an append-only list of ticket ids
// owned by the user, maintained by ticket creation as a denormalized cache
// of ownership.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Tickets []string `json:"tickets"`
}

// UserPayload carries the caller-supplied fields for a new user.
type UserPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UserUpdate is a partial update; the name is fixed at creation.
type UserUpdate struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
