package task

import (
	"context"

	"github.com/google/uuid"
)

// TypeBlobCleanup identifies BlobCleanupTask.
const TypeBlobCleanup = "blob_cleanup"

// Task is a unit of background work.
type Task interface {
	ID() uuid.UUID
	Type() string
	Execute(ctx context.Context) error
}

// TaskQueueReader gives workers the channel to consume tasks from.
type TaskQueueReader interface {
	GetChannel() <-chan Task
}

// TaskQueueWriter accepts tasks for processing.
type TaskQueueWriter interface {
	// Enqueue adds a task without blocking. It fails when the queue is full
	// or closed.
	Enqueue(task Task) error

	// Close stops accepting tasks. Tasks already queued are still delivered.
	Close()
}
