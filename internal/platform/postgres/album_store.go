package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// PostgresAlbumStore implements the store.AlbumStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAlbumStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAlbumStore creates a new PostgreSQL implementation of the AlbumStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAlbumStore(db store.DBTX, logger *slog.Logger) *PostgresAlbumStore {
	if db == nil {
		// ALLOW-PANIC
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAlbumStore{
		db:     db,
		logger: logger.With(slog.String("component", "album_store")),
	}
}

var _ store.AlbumStore = (*PostgresAlbumStore)(nil)

// WithTx implements store.AlbumStore.WithTx.
func (s *PostgresAlbumStore) WithTx(tx *sql.Tx) store.AlbumStore {
	return &PostgresAlbumStore{db: tx, logger: s.logger}
}

// Create implements store.AlbumStore.Create.
// Returns store.ErrInvalidEntity if the album fails validation or the owner does not exist.
func (s *PostgresAlbumStore) Create(ctx context.Context, album *domain.Album) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := album.Validate(); err != nil {
		log.Warn("album validation failed during create",
			slog.String("error", err.Error()),
			slog.String("album_id", album.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO albums (id, owner_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, album.ID, album.OwnerID, album.Name, album.CreatedAt)
	if err != nil {
		log.Error("failed to create album",
			slog.String("error", err.Error()),
			slog.String("album_id", album.ID),
			slog.String("owner_id", album.OwnerID.String()))
		return store.NewStoreError("album", "create", "failed to insert album", MapError(err))
	}

	log.Debug("album created",
		slog.String("album_id", album.ID),
		slog.String("owner_id", album.OwnerID.String()))
	return nil
}

// GetByID implements store.AlbumStore.GetByID.
// Returns store.ErrAlbumNotFound if the album does not exist.
func (s *PostgresAlbumStore) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, created_at
		FROM albums
		WHERE id = $1
	`

	var album domain.Album
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&album.ID,
		&album.OwnerID,
		&album.Name,
		&album.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("album not found", slog.String("album_id", id))
			return nil, store.ErrAlbumNotFound
		}
		log.Error("failed to get album",
			slog.String("error", err.Error()),
			slog.String("album_id", id))
		return nil, store.NewStoreError("album", "get", "failed to query album", MapError(err))
	}

	photoIDs, err := s.photoIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	album.PhotoIDs = photoIDs

	return &album, nil
}

func (s *PostgresAlbumStore) photoIDs(ctx context.Context, albumID string) ([]string, error) {
	query := `
		SELECT id
		FROM photos
		WHERE album_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, albumID)
	if err != nil {
		return nil, store.NewStoreError("album", "get", "failed to query photo ids", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, store.NewStoreError("album", "get", "failed to scan photo id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("album", "get", "failed to iterate photo ids", err)
	}
	return ids, nil
}

// ListByOwner implements store.AlbumStore.ListByOwner.
func (s *PostgresAlbumStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, created_at
		FROM albums
		WHERE owner_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list albums",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, store.NewStoreError("album", "list", "failed to query albums", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	albums := []*domain.Album{}
	byID := make(map[string]*domain.Album)
	for rows.Next() {
		album := &domain.Album{PhotoIDs: []string{}}
		if err := rows.Scan(&album.ID, &album.OwnerID, &album.Name, &album.CreatedAt); err != nil {
			return nil, store.NewStoreError("album", "list", "failed to scan album", err)
		}
		albums = append(albums, album)
		byID[album.ID] = album
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("album", "list", "failed to iterate albums", err)
	}

	if len(albums) == 0 {
		return albums, nil
	}

	photoQuery := `
		SELECT album_id, id
		FROM photos
		WHERE owner_id = $1
		ORDER BY created_at, id
	`
	photoRows, err := s.db.QueryContext(ctx, photoQuery, ownerID)
	if err != nil {
		return nil, store.NewStoreError("album", "list", "failed to query photo ids", MapError(err))
	}
	defer func() { _ = photoRows.Close() }()

	for photoRows.Next() {
		var albumID, photoID string
		if err := photoRows.Scan(&albumID, &photoID); err != nil {
			return nil, store.NewStoreError("album", "list", "failed to scan photo id", err)
		}
		if album, ok := byID[albumID]; ok {
			album.PhotoIDs = append(album.PhotoIDs, photoID)
		}
	}
	if err := photoRows.Err(); err != nil {
		return nil, store.NewStoreError("album", "list", "failed to iterate photo ids", err)
	}

	log.Debug("albums listed",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(albums)))
	return albums, nil
}

// Delete implements store.AlbumStore.Delete.
// Photos rows go with the album through ON DELETE CASCADE; blobs are the caller's concern.
func (s *PostgresAlbumStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete album",
			slog.String("error", err.Error()),
			slog.String("album_id", id))
		return store.NewStoreError("album", "delete", "failed to delete album", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAlbumNotFound); err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			log.Debug("album to delete not found", slog.String("album_id", id))
		}
		return err
	}

	log.Debug("album deleted", slog.String("album_id", id))
	return nil
}
