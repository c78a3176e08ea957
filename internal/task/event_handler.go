package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/photoalbum-api/internal/events"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// BlobCleanupEventHandler turns BlobsOrphaned events into BlobCleanupTasks.
type BlobCleanupEventHandler struct {
	queue  TaskQueueWriter
	blobs  store.BlobStore
	logger *slog.Logger
}

var _ events.EventHandler = (*BlobCleanupEventHandler)(nil)

// NewBlobCleanupEventHandler creates a handler enqueueing onto queue.
func NewBlobCleanupEventHandler(
	queue TaskQueueWriter,
	blobs store.BlobStore,
	logger *slog.Logger,
) *BlobCleanupEventHandler {
	if queue == nil || blobs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependencies
		panic("queue and blobs cannot be nil")
	}
	return &BlobCleanupEventHandler{
		queue:  queue,
		blobs:  blobs,
		logger: logger.With(slog.String("component", "blob_cleanup_event_handler")),
	}
}

// HandleEvent implements events.EventHandler. Events of other types are ignored.
func (h *BlobCleanupEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	log := logger.FromContextOrDefault(ctx, h.logger)

	if event.Type != events.BlobsOrphaned {
		log.Debug("ignoring event with unsupported type",
			slog.String("event_type", event.Type),
			slog.String("event_id", event.ID.String()))
		return nil
	}

	var payload events.BlobsOrphanedPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", event.Type, err)
	}
	if len(payload.Keys) == 0 {
		return nil
	}

	task := NewBlobCleanupTask(h.blobs, payload.Keys)
	if err := h.queue.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue blob cleanup: %w", err)
	}

	log.Debug("blob cleanup enqueued",
		slog.String("task_id", task.ID().String()),
		slog.String("event_id", event.ID.String()),
		slog.Int("key_count", len(payload.Keys)))
	return nil
}
