package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLStore persists records of type T in a MySQL table of shape
// (id VARCHAR PK, seq AUTO_INCREMENT, doc JSON).  Records are serialized
// with encoding/json; the seq column preserves first-insert order because an
// overwrite via ON DUPLICATE KEY leaves the existing row's seq in place.
type SQLStore[T any] struct {
	db    *sql.DB
	table string
}

// NewSQLStore binds a store to its namespace table.  The table name comes
// from the fixed schema bootstrap, never from caller input.
func NewSQLStore[T any](db *sql.DB, table string) *SQLStore[T] {
	return &SQLStore[T]{db: db, table: table}
}

type txKey struct{}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// q returns the transaction carried in ctx when present, so store calls made
// inside SQLRunner.InTx automatically join that transaction.
func (s *SQLStore[T]) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

func (s *SQLStore[T]) Insert(ctx context.Context, id string, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: marshal record: %w", s.table, err)
	}
	query := "INSERT INTO `" + s.table + "` (id, doc) VALUES (?, ?) ON DUPLICATE KEY UPDATE doc = VALUES(doc)"
	if _, err := s.q(ctx).ExecContext(ctx, query, id, doc); err != nil {
		return fmt.Errorf("%s: insert %s: %w", s.table, id, err)
	}
	return nil
}

func (s *SQLStore[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	var doc []byte
	query := "SELECT doc FROM `" + s.table + "` WHERE id = ?"
	err := s.q(ctx).QueryRowContext(ctx, query, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("%s: get %s: %w", s.table, id, err)
	}
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return zero, false, fmt.Errorf("%s: unmarshal %s: %w", s.table, id, err)
	}
	return v, true, nil
}

func (s *SQLStore[T]) Values(ctx context.Context) ([]T, error) {
	query := "SELECT doc FROM `" + s.table + "` ORDER BY seq"
	rows, err := s.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: values: %w", s.table, err)
	}
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", s.table, err)
		}
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("%s: unmarshal: %w", s.table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: values: %w", s.table, err)
	}
	return out, nil
}

// SQLRunner runs a function inside a single database transaction.  The
// transaction handle travels in the context so any SQLStore touched by fn
// joins it without the services knowing about database/sql.
type SQLRunner struct {
	DB *sql.DB
}

func (r *SQLRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
