package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// seqIDs returns an IDFunc yielding prefix-1, prefix-2, ... for
// deterministic assertions.
func seqIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newEventService() *EventService {
	s := NewEventService(store.NewMemoryStore[model.Event]())
	s.newID = seqIDs("ev")
	return s
}

func TestEventCreate(t *testing.T) {
	ctx := context.Background()
	svc := newEventService()

	ev, err := svc.Create(ctx, model.EventPayload{
		Title:    "Food Fest",
		Location: "Nairobi",
		MaxSlots: 100,
	}, "seller-1")
	require.NoError(t, err)

	assert.Equal(t, "ev-1", ev.ID)
	assert.Equal(t, "Food Fest", ev.Title)
	assert.Equal(t, "seller-1", ev.Seller)
	assert.Equal(t, uint64(0), ev.ReservedAmount)

	got, err := svc.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev, got)
}

func TestEventCreateRejectsEmptyPayload(t *testing.T) {
	svc := newEventService()

	_, err := svc.Create(context.Background(), model.EventPayload{}, "seller-1")
	require.Error(t, err)

	var tagged *model.Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, model.ErrInvalidPayload, tagged.Kind)
}

func TestEventCreateAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(store.NewMemoryStore[model.Event]())

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ev, err := svc.Create(ctx, model.EventPayload{Title: "t"}, "s")
		require.NoError(t, err)
		assert.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
		seen[ev.ID] = true
	}
}

func TestEventGetUnknown(t *testing.T) {
	svc := newEventService()

	_, err := svc.Get(context.Background(), "nope")
	var tagged *model.Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, model.ErrNotFound, tagged.Kind)
	assert.Equal(t, "event with id=nope not found", tagged.Message)
}

func TestEventListOrder(t *testing.T) {
	ctx := context.Background()
	svc := newEventService()

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, model.EventPayload{Title: title}, "s")
		require.NoError(t, err)
	}

	evs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, evs, 3)
	assert.Equal(t, "one", evs[0].Title)
	assert.Equal(t, "two", evs[1].Title)
	assert.Equal(t, "three", evs[2].Title)
}

func TestEventUpdateMergesPresentFields(t *testing.T) {
	ctx := context.Background()
	svc := newEventService()

	ev, err := svc.Create(ctx, model.EventPayload{
		Title:       "Food Fest",
		Description: "street food",
		Location:    "Nairobi",
		MaxSlots:    100,
	}, "seller-1")
	require.NoError(t, err)

	loc := "Mombasa"
	slots := uint64(250)
	updated, err := svc.Update(ctx, ev.ID, model.EventUpdate{
		Location: &loc,
		MaxSlots: &slots,
	})
	require.NoError(t, err)

	assert.Equal(t, ev.ID, updated.ID)
	assert.Equal(t, "Food Fest", updated.Title)
	assert.Equal(t, "street food", updated.Description)
	assert.Equal(t, "Mombasa", updated.Location)
	assert.Equal(t, uint64(250), updated.MaxSlots)
	assert.Equal(t, "seller-1", updated.Seller)

	// The update replaced the stored record, not a copy.
	got, err := svc.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestEventUpdateUnknown(t *testing.T) {
	svc := newEventService()
	loc := "x"
	_, err := svc.Update(context.Background(), "ghost", model.EventUpdate{Location: &loc})
	var tagged *model.Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, model.ErrNotFound, tagged.Kind)
}
