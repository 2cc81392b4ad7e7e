package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDeliveryWritesLogLine(t *testing.T) {
	dir := t.TempDir()

	ev := TicketCreatedEvent{
		TicketID:   "t-1",
		EventID:    "e-1",
		EventName:  "Food Fest",
		UserID:     "u-1",
		Principal:  "guest",
		OccurredAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, handleDelivery(dir, body))

	raw, err := os.ReadFile(filepath.Join(dir, "ticket.log"))
	require.NoError(t, err)
	line := string(raw)
	assert.Contains(t, line, "ticket=t-1")
	assert.Contains(t, line, `event="Food Fest"`)
	assert.Contains(t, line, "user=u-1")
}

func TestHandleDeliveryRejectsMalformedBody(t *testing.T) {
	dir := t.TempDir()

	err := handleDelivery(dir, []byte("not json"))
	require.Error(t, err)

	// Nothing was written for the bad body.
	_, statErr := os.Stat(filepath.Join(dir, "ticket.log"))
	assert.True(t, os.IsNotExist(statErr))
}
