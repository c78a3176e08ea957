package task

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/photoalbum-api/internal/store"
)

// cleanupConcurrency caps the deletions one task runs at a time.
const cleanupConcurrency = 8

// BlobCleanupTask deletes stored images that no photo references anymore.
type BlobCleanupTask struct {
	id    uuid.UUID
	keys  []string
	blobs store.BlobStore
}

var _ Task = (*BlobCleanupTask)(nil)

// NewBlobCleanupTask creates a task deleting keys from blobs.
func NewBlobCleanupTask(blobs store.BlobStore, keys []string) *BlobCleanupTask {
	return &BlobCleanupTask{
		id:    uuid.New(),
		keys:  append([]string(nil), keys...),
		blobs: blobs,
	}
}

// ID implements Task.
func (t *BlobCleanupTask) ID() uuid.UUID { return t.id }

// Type implements Task.
func (t *BlobCleanupTask) Type() string { return TypeBlobCleanup }

// Keys returns the blob keys the task deletes.
func (t *BlobCleanupTask) Keys() []string { return t.keys }

// Execute deletes every key, continuing past failures. The returned error
// joins all failures.
func (t *BlobCleanupTask) Execute(ctx context.Context) error {
	var (
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}

	var g errgroup.Group
	g.SetLimit(cleanupConcurrency)
	for _, key := range t.keys {
		if err := ctx.Err(); err != nil {
			record(err)
			break
		}
		g.Go(func() error {
			if err := t.blobs.Delete(ctx, key); err != nil {
				record(fmt.Errorf("delete %s: %w", key, err))
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
