// Package model defines the record types stored by the registry along with
// the payloads accepted at the API boundary and the tagged error type that
// every service operation reports failures through.
package model

import "fmt"

// ErrorKind enumerates the error variants callers can branch on.  Clients
// are expected to switch on the kind, never on the message text, which is
// a human-readable diagnostic only.
type ErrorKind string

const (
	ErrNotFound         ErrorKind = "NotFound"
	ErrInvalidPayload   ErrorKind = "InvalidPayload"
	ErrPaymentFailed    ErrorKind = "PaymentFailed"
	ErrPaymentCompleted ErrorKind = "PaymentCompleted"
)

// Error is the tagged error carried in the failure channel of every service
// operation.  PaymentFailed and PaymentCompleted are declared for the ledger
// settlement flow, which is handled outside this service; no reachable code
// path produces them.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NotFoundf builds a NotFound error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidPayloadf builds an InvalidPayload error with a formatted message.
func InvalidPayloadf(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidPayload, Message: fmt.Sprintf(format, args...)}
}
