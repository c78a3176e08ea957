package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	type payload struct {
		Action string `json:"action"`
	}

	event, err := NewEvent("test_event", payload{Action: "resize"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "test_event", event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)
	assert.JSONEq(t, `{"action":"resize"}`, string(event.Payload))

	var decoded payload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, "resize", decoded.Action)
}

func TestNewEvent_UnencodablePayload(t *testing.T) {
	_, err := NewEvent("test_event", make(chan int))
	assert.Error(t, err)
}

func TestNewBlobsOrphanedEvent(t *testing.T) {
	event, err := NewBlobsOrphanedEvent("photos/a.jpg", "photos/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, BlobsOrphaned, event.Type)

	var payload BlobsOrphanedPayload
	require.NoError(t, event.UnmarshalPayload(&payload))
	assert.Equal(t, []string{"photos/a.jpg", "photos/b.jpg"}, payload.Keys)
}

func TestUnmarshalPayload_Invalid(t *testing.T) {
	event := &Event{Type: BlobsOrphaned, Payload: []byte(`{"keys":`)}
	var payload BlobsOrphanedPayload
	assert.Error(t, event.UnmarshalPayload(&payload))
}
