// Package store provides the persistent keyed-record store every entity
// service is built on: an ordered map from string id to a structured record,
// scoped to one namespace per entity type.  Namespaces are disjoint, so ids
// can never collide across entity types.
package store

import "context"

// Store is a namespace-scoped ordered mapping from string id to a record.
//
// Get reports absence through the boolean, not through an error: a missing
// id is a normal, checked outcome.  Values returns every record in
// first-insert order; overwrites keep the original position.  Callers may
// rely on the order being stable across calls but not on it meaning
// anything.
type Store[T any] interface {
	// Insert stores the record under id, overwriting any previous value.
	Insert(ctx context.Context, id string, v T) error
	// Get returns the record for id, or ok=false when absent.
	Get(ctx context.Context, id string) (T, bool, error)
	// Values returns all records in first-insert order.
	Values(ctx context.Context) ([]T, error)
}

// TxRunner executes fn as a single atomic unit.  Writes issued through
// stores sharing the runner's backend either all persist or none do.  The
// ticket flow uses this to keep the event counter, the ticket record and the
// user's ticket list consistent under mid-sequence failures.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
