//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/platform/postgres"
	"github.com/phrazzld/photoalbum-api/internal/store"
	"github.com/phrazzld/photoalbum-api/internal/testdb"
)

func insertUser(t *testing.T, tx *sql.Tx, logger *slog.Logger) *domain.User {
	t.Helper()
	user, err := domain.NewUser(uuid.NewString()+"@example.com", "correct horse battery")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	user.Password = ""
	require.NoError(t, postgres.NewPostgresUserStore(tx, logger).Create(context.Background(), user))
	return user
}

// expectFailure runs a statement that is meant to fail under a savepoint, so
// the surrounding transaction stays usable.
func expectFailure(t *testing.T, tx *sql.Tx, fn func() error) error {
	t.Helper()
	ctx := context.Background()
	_, err := tx.ExecContext(ctx, "SAVEPOINT expect_failure")
	require.NoError(t, err)
	failure := fn()
	_, err = tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT expect_failure")
	require.NoError(t, err)
	return failure
}

func TestStores_AgainstPostgres(t *testing.T) {
	db := testdb.Open(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, logger)
		albums := postgres.NewPostgresAlbumStore(tx, logger)
		photos := postgres.NewPostgresPhotoStore(tx, logger)

		owner := insertUser(t, tx, logger)

		found, err := users.GetByEmail(ctx, owner.Email)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, found.ID)

		dup := *owner
		dup.ID = uuid.New()
		assert.ErrorIs(t, expectFailure(t, tx, func() error { return users.Create(ctx, &dup) }),
			store.ErrEmailExists)

		album, err := domain.NewAlbum(owner.ID, "Summer")
		require.NoError(t, err)
		require.NoError(t, albums.Create(ctx, album))

		photo, err := domain.NewPhoto(album.ID, owner.ID, "beach.jpg")
		require.NoError(t, err)
		require.NoError(t, photos.Create(ctx, photo))

		photo.UpdateMetadata("sunset", []string{"sea", "sun"})
		require.NoError(t, photos.UpdateMetadata(ctx, photo))

		got, err := photos.GetByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, "sunset", got.Description)
		assert.Equal(t, []string{"sea", "sun"}, got.Tags)
		assert.Equal(t, photo.BlobKey, got.BlobKey)

		listed, err := albums.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, []string{photo.ID}, listed[0].PhotoIDs)

		orphan, err := domain.NewPhoto(uuid.NewString(), owner.ID, "lost.jpg")
		require.NoError(t, err)
		assert.ErrorIs(t, expectFailure(t, tx, func() error { return photos.Create(ctx, orphan) }),
			store.ErrAlbumNotFound)

		require.NoError(t, albums.Delete(ctx, album.ID))
		_, err = photos.GetByID(ctx, photo.ID)
		assert.ErrorIs(t, err, store.ErrPhotoNotFound)
		assert.ErrorIs(t, albums.Delete(ctx, album.ID), store.ErrAlbumNotFound)
	})
}
