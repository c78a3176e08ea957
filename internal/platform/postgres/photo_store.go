package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// PostgresPhotoStore implements the store.PhotoStore interface
// using a PostgreSQL database as the storage backend.
// Tags are kept in a JSONB array column.
type PostgresPhotoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPhotoStore creates a new PostgreSQL implementation of the PhotoStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPhotoStore(db store.DBTX, logger *slog.Logger) *PostgresPhotoStore {
	if db == nil {
		// ALLOW-PANIC
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPhotoStore{
		db:     db,
		logger: logger.With(slog.String("component", "photo_store")),
	}
}

var _ store.PhotoStore = (*PostgresPhotoStore)(nil)

const photoColumns = `id, album_id, owner_id, original_filename, blob_key, description, tags, created_at, updated_at`

// WithTx implements store.PhotoStore.WithTx.
func (s *PostgresPhotoStore) WithTx(tx *sql.Tx) store.PhotoStore {
	return &PostgresPhotoStore{db: tx, logger: s.logger}
}

// Create implements store.PhotoStore.Create.
// Returns store.ErrAlbumNotFound if the album does not exist.
func (s *PostgresPhotoStore) Create(ctx context.Context, photo *domain.Photo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := photo.Validate(); err != nil {
		log.Warn("photo validation failed during create",
			slog.String("error", err.Error()),
			slog.String("photo_id", photo.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	tags, err := encodeTags(photo.Tags)
	if err != nil {
		return store.NewStoreError("photo", "create", "failed to encode tags", err)
	}

	query := `
		INSERT INTO photos (` + photoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(ctx, query,
		photo.ID,
		photo.AlbumID,
		photo.OwnerID,
		photo.OriginalFilename,
		photo.BlobKey,
		photo.Description,
		tags,
		photo.CreatedAt,
		photo.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during photo creation",
				slog.String("photo_id", photo.ID),
				slog.String("album_id", photo.AlbumID))
			return store.ErrAlbumNotFound
		}
		log.Error("failed to create photo",
			slog.String("error", err.Error()),
			slog.String("photo_id", photo.ID),
			slog.String("album_id", photo.AlbumID))
		return store.NewStoreError("photo", "create", "failed to insert photo", MapError(err))
	}

	log.Debug("photo created",
		slog.String("photo_id", photo.ID),
		slog.String("album_id", photo.AlbumID))
	return nil
}

// GetByID implements store.PhotoStore.GetByID.
// Returns store.ErrPhotoNotFound if the photo does not exist.
func (s *PostgresPhotoStore) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`

	photo, err := scanPhoto(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("photo not found", slog.String("photo_id", id))
			return nil, store.ErrPhotoNotFound
		}
		log.Error("failed to get photo",
			slog.String("error", err.Error()),
			slog.String("photo_id", id))
		return nil, store.NewStoreError("photo", "get", "failed to query photo", MapError(err))
	}

	return photo, nil
}

// ListByAlbum implements store.PhotoStore.ListByAlbum.
func (s *PostgresPhotoStore) ListByAlbum(ctx context.Context, albumID string) ([]*domain.Photo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + photoColumns + ` FROM photos WHERE album_id = $1 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, albumID)
	if err != nil {
		log.Error("failed to list photos",
			slog.String("error", err.Error()),
			slog.String("album_id", albumID))
		return nil, store.NewStoreError("photo", "list", "failed to query photos", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	photos := []*domain.Photo{}
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, store.NewStoreError("photo", "list", "failed to scan photo", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("photo", "list", "failed to iterate photos", err)
	}

	return photos, nil
}

// UpdateMetadata implements store.PhotoStore.UpdateMetadata.
// Concurrent updates are last-writer-wins.
func (s *PostgresPhotoStore) UpdateMetadata(ctx context.Context, photo *domain.Photo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tags, err := encodeTags(photo.Tags)
	if err != nil {
		return store.NewStoreError("photo", "update", "failed to encode tags", err)
	}

	query := `
		UPDATE photos
		SET description = $1, tags = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query, photo.Description, tags, photo.UpdatedAt, photo.ID)
	if err != nil {
		log.Error("failed to update photo metadata",
			slog.String("error", err.Error()),
			slog.String("photo_id", photo.ID))
		return store.NewStoreError("photo", "update", "failed to update photo", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrPhotoNotFound); err != nil {
		return err
	}

	log.Debug("photo metadata updated",
		slog.String("photo_id", photo.ID),
		slog.Int("tag_count", len(photo.Tags)))
	return nil
}

// Delete implements store.PhotoStore.Delete.
func (s *PostgresPhotoStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete photo",
			slog.String("error", err.Error()),
			slog.String("photo_id", id))
		return store.NewStoreError("photo", "delete", "failed to delete photo", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrPhotoNotFound); err != nil {
		return err
	}

	log.Debug("photo deleted", slog.String("photo_id", id))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhoto(row rowScanner) (*domain.Photo, error) {
	var photo domain.Photo
	var tags []byte
	err := row.Scan(
		&photo.ID,
		&photo.AlbumID,
		&photo.OwnerID,
		&photo.OriginalFilename,
		&photo.BlobKey,
		&photo.Description,
		&tags,
		&photo.CreatedAt,
		&photo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	photo.Tags, err = decodeTags(tags)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeTags(data []byte) ([]string, error) {
	tags := []string{}
	if len(data) == 0 {
		return tags, nil
	}
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
