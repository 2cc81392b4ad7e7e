package model

// Event is a listing created by a seller.  MaxSlots is the capacity the
// seller announced (the admin UI scales it by a fixed-point factor of 1e8
// before display); ReservedAmount counts issued tickets.  ReservedAmount is
// allowed to exceed MaxSlots: the registry records reservations, it does not
// gate them.
//
// JSON field names follow the wire format the admin frontend already speaks.
type Event struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	AttachmentURL  string `json:"attachmentURL"`
	Location       string `json:"location"`
	Seller         string `json:"seller"`
	MaxSlots       uint64 `json:"maxSlots"`
	ReservedAmount uint64 `json:"reservedAmount"`
}

// EventPayload carries the caller-supplied fields for a new event.  The id,
// seller and reservation counter are assigned by the service.
type EventPayload struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	StartTime     string `json:"startTime"`
	AttachmentURL string `json:"attachmentURL"`
	MaxSlots      uint64 `json:"maxSlots"`
	Date          string `json:"date"`
}

// EventUpdate is a partial update.  Nil fields keep their stored value; the
// title and id of an event are never changed after creation.
type EventUpdate struct {
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	StartTime     *string `json:"startTime"`
	AttachmentURL *string `json:"attachmentURL"`
	MaxSlots      *uint64 `json:"maxSlots"`
	Date          *string `json:"date"`
}
