package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name string
}

func TestMemoryStoreInsertGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[doc]()

	require.NoError(t, s.Insert(ctx, "a", doc{Name: "first"}))

	got, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)

	_, ok, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreValuesKeepFirstInsertOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[doc]()

	require.NoError(t, s.Insert(ctx, "b", doc{Name: "one"}))
	require.NoError(t, s.Insert(ctx, "a", doc{Name: "two"}))
	require.NoError(t, s.Insert(ctx, "c", doc{Name: "three"}))

	vals, err := s.Values(ctx)
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, []doc{{Name: "one"}, {Name: "two"}, {Name: "three"}}, vals)
}

func TestMemoryStoreOverwriteKeepsPosition(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[doc]()

	require.NoError(t, s.Insert(ctx, "a", doc{Name: "one"}))
	require.NoError(t, s.Insert(ctx, "b", doc{Name: "two"}))
	require.NoError(t, s.Insert(ctx, "a", doc{Name: "updated"}))

	vals, err := s.Values(ctx)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "updated", vals[0].Name)
	assert.Equal(t, "two", vals[1].Name)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStoreValuesEmpty(t *testing.T) {
	s := NewMemoryStore[doc]()
	vals, err := s.Values(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, vals)
	assert.Empty(t, vals)
}

func TestMemoryRunnerPropagatesError(t *testing.T) {
	r := &MemoryRunner{}
	err := r.InTx(context.Background(), func(ctx context.Context) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
