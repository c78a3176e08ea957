package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/photoalbum-api/internal/events"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// blobReclaimer removes images whose photos are gone. With an emitter the
// deletion is handed off as a BlobsOrphaned event; without one, or when the
// event is refused, the images are deleted inline.
type blobReclaimer struct {
	blobs   store.BlobStore
	emitter events.EventEmitter
}

func (r *blobReclaimer) reclaim(ctx context.Context, log *slog.Logger, keys ...string) {
	if len(keys) == 0 {
		return
	}

	if r.emitter != nil {
		event, err := events.NewBlobsOrphanedEvent(keys...)
		if err == nil {
			err = r.emitter.EmitEvent(ctx, event)
		}
		if err == nil {
			return
		}
		log.Warn("deferred image cleanup unavailable, deleting inline",
			slog.String("error", err.Error()))
	}

	for _, key := range keys {
		if err := r.blobs.Delete(ctx, key); err != nil {
			log.Warn("failed to delete photo content",
				slog.String("blob_key", key),
				slog.String("error", err.Error()))
		}
	}
}
