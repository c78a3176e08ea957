package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlobsOrphaned is emitted once stored images no longer belong to any photo.
// Its payload is a BlobsOrphanedPayload.
const BlobsOrphaned = "blobs_orphaned"

// Event is something that happened which may require background work.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// BlobsOrphanedPayload lists the blob keys left behind by a deletion.
type BlobsOrphanedPayload struct {
	Keys []string `json:"keys"`
}

// NewEvent creates an event of the given type with a JSON encoded payload.
func NewEvent(eventType string, payload any) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewBlobsOrphanedEvent creates a BlobsOrphaned event for keys.
func NewBlobsOrphanedEvent(keys ...string) (*Event, error) {
	return NewEvent(BlobsOrphaned, BlobsOrphanedPayload{Keys: keys})
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// EventHandler processes events.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter publishes events to whoever handles them.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *Event) error
}
