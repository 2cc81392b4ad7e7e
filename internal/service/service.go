// Package service implements the entity services: create, get, list and
// partial update over one record store each, plus the multi-store ticket
// flow and its join queries.  Every failure a caller can act on is reported
// as a tagged *model.Error; anything else is a persistence fault.
package service

import "github.com/google/uuid"

// IDFunc produces a fresh unique identifier per created record.  Services
// default to uuid.NewString; tests may swap in a deterministic provider.
type IDFunc func() string

func defaultID() string { return uuid.NewString() }
