package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/events"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// AlbumQueryService reads albums and their photos.
type AlbumQueryService interface {
	// AlbumByID returns the album, or A001 if it does not exist.
	AlbumByID(ctx context.Context, albumID string) (*domain.Album, error)

	// AlbumsByOwner lists the albums owned by ownerID.
	AlbumsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error)

	// PhotosOf lists the photos of album in upload order.
	PhotosOf(ctx context.Context, album *domain.Album) ([]*domain.Photo, error)
}

// AlbumCommandService creates and removes albums.
type AlbumCommandService interface {
	// CreateAlbum creates an empty album owned by ownerID.
	CreateAlbum(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Album, error)

	// DeleteAlbum removes the album together with its photos and their images.
	DeleteAlbum(ctx context.Context, albumID string) error
}

// AlbumServiceImpl implements AlbumQueryService and AlbumCommandService.
type AlbumServiceImpl struct {
	albumStore store.AlbumStore
	photoStore store.PhotoStore
	reclaimer  blobReclaimer
	db         store.TxBeginner
	logger     *slog.Logger
}

var (
	_ AlbumQueryService   = (*AlbumServiceImpl)(nil)
	_ AlbumCommandService = (*AlbumServiceImpl)(nil)
)

// NewAlbumService creates an album service.
func NewAlbumService(
	albumStore store.AlbumStore,
	photoStore store.PhotoStore,
	blobStore store.BlobStore,
	db store.TxBeginner,
	logger *slog.Logger,
) *AlbumServiceImpl {
	if albumStore == nil || photoStore == nil || blobStore == nil || db == nil {
		// ALLOW-PANIC
		panic("album service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AlbumServiceImpl{
		albumStore: albumStore,
		photoStore: photoStore,
		reclaimer:  blobReclaimer{blobs: blobStore},
		db:         db,
		logger:     logger.With(slog.String("component", "album_service")),
	}
}

// SetEventEmitter hands the deletion of orphaned images to emitter's
// handlers. Set it before serving requests.
func (s *AlbumServiceImpl) SetEventEmitter(emitter events.EventEmitter) {
	s.reclaimer.emitter = emitter
}

// AlbumByID implements AlbumQueryService.
func (s *AlbumServiceImpl) AlbumByID(ctx context.Context, albumID string) (*domain.Album, error) {
	album, err := s.albumStore.GetByID(ctx, albumID)
	if err != nil {
		return nil, albumError(albumID, err, "retrieve album")
	}
	return album, nil
}

// AlbumsByOwner implements AlbumQueryService.
func (s *AlbumServiceImpl) AlbumsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error) {
	albums, err := s.albumStore.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list albums",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

// PhotosOf implements AlbumQueryService.
func (s *AlbumServiceImpl) PhotosOf(ctx context.Context, album *domain.Album) ([]*domain.Photo, error) {
	photos, err := s.photoStore.ListByAlbum(ctx, album.ID)
	if err != nil {
		return nil, albumError(album.ID, err, "list photos")
	}
	return photos, nil
}

// CreateAlbum implements AlbumCommandService.
func (s *AlbumServiceImpl) CreateAlbum(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Album, error) {
	album, err := domain.NewAlbum(ownerID, name)
	if err != nil {
		return nil, validationError(err, "create album")
	}

	if err := s.albumStore.Create(ctx, album); err != nil {
		return nil, albumError(album.ID, err, "create album")
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("album created",
		slog.String("album_id", album.ID),
		slog.String("owner_id", ownerID.String()))
	return album, nil
}

// DeleteAlbum implements AlbumCommandService. Rows are removed in one
// transaction; the images are deleted once it has committed.
func (s *AlbumServiceImpl) DeleteAlbum(ctx context.Context, albumID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var blobKeys []string
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		photos, err := s.photoStore.WithTx(tx).ListByAlbum(ctx, albumID)
		if err != nil {
			return err
		}
		for _, photo := range photos {
			blobKeys = append(blobKeys, photo.BlobKey)
		}
		return s.albumStore.WithTx(tx).Delete(ctx, albumID)
	})
	if err != nil {
		return albumError(albumID, err, "delete album")
	}

	s.reclaimer.reclaim(ctx, log, blobKeys...)

	log.Info("album deleted",
		slog.String("album_id", albumID),
		slog.Int("photo_count", len(blobKeys)))
	return nil
}
