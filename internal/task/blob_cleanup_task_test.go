package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/photoalbum-api/internal/mocks"
)

func TestBlobCleanupTask_Execute(t *testing.T) {
	blobs := mocks.NewMockBlobStore()
	blobs.Objects["a"] = []byte("a")
	blobs.Objects["b"] = []byte("b")

	task := NewBlobCleanupTask(blobs, []string{"a", "b"})

	assert.Equal(t, TypeBlobCleanup, task.Type())
	assert.NoError(t, task.Execute(context.Background()))
	assert.Empty(t, blobs.Objects)
}

func TestBlobCleanupTask_ContinuesPastFailures(t *testing.T) {
	blobs := mocks.NewMockBlobStore()
	deleteErr := errors.New("s3 unavailable")
	blobs.DeleteFn = func(_ context.Context, key string) error {
		if key == "a" {
			return deleteErr
		}
		return nil
	}

	err := NewBlobCleanupTask(blobs, []string{"a", "b"}).Execute(context.Background())

	assert.ErrorIs(t, err, deleteErr)
	assert.Contains(t, err.Error(), "delete a")
	assert.ElementsMatch(t, []string{"a", "b"}, blobs.Deleted())
}

func TestBlobCleanupTask_CanceledContext(t *testing.T) {
	blobs := mocks.NewMockBlobStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewBlobCleanupTask(blobs, []string{"a"}).Execute(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, blobs.Deleted())
}

func TestNewBlobCleanupTask_CopiesKeys(t *testing.T) {
	keys := []string{"a"}
	task := NewBlobCleanupTask(mocks.NewMockBlobStore(), keys)
	keys[0] = "changed"

	assert.Equal(t, []string{"a"}, task.Keys())
}
