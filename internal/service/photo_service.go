package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif" // format detection for rejected uploads
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/events"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// JPEGContentType is the media type of every stored original and thumbnail.
const JPEGContentType = "image/jpeg"

// Image is binary photo content ready to be streamed to a client.
// The caller must close Content.
type Image struct {
	Content     io.ReadCloser
	ContentType string
	Size        int64
}

// PhotoQueryService reads photos and their content.
type PhotoQueryService interface {
	// PhotoByID returns the photo, or P001 if it does not exist.
	PhotoByID(ctx context.Context, photoID string) (*domain.Photo, error)

	// OriginalByID returns the uploaded image of the photo.
	OriginalByID(ctx context.Context, photoID string) (*Image, error)

	// ThumbnailByID renders a scaled-down JPEG of the photo.
	ThumbnailByID(ctx context.Context, photoID string) (*Image, error)
}

// PhotoCommandService mutates photos.
type PhotoCommandService interface {
	// UpdateMetadata replaces description and tags of the photo.
	UpdateMetadata(ctx context.Context, photoID, description string, tags []string) (*domain.Photo, error)

	// DeletePhoto removes the photo and its stored image.
	DeletePhoto(ctx context.Context, photoID string) error

	// UploadPhoto stores a new JPEG photo in the album, owned by principal.
	UploadPhoto(
		ctx context.Context,
		principal domain.Principal,
		albumID, filename string,
		content []byte,
	) (*domain.Photo, error)
}

// PhotoServiceOptions tunes the photo service.
type PhotoServiceOptions struct {
	ThumbnailWidth int
	MaxUploadBytes int64
	// MaxPixels caps width*height of uploaded images. Zero selects
	// DefaultMaxPixels.
	MaxPixels int64
}

// PhotoServiceImpl implements PhotoQueryService and PhotoCommandService.
type PhotoServiceImpl struct {
	photoStore store.PhotoStore
	blobStore  store.BlobStore
	reclaimer  blobReclaimer
	renderer   ThumbnailRenderer
	opts       PhotoServiceOptions
	logger     *slog.Logger
}

var (
	_ PhotoQueryService   = (*PhotoServiceImpl)(nil)
	_ PhotoCommandService = (*PhotoServiceImpl)(nil)
)

// NewPhotoService creates a photo service. A nil renderer selects
// JPEGThumbnailRenderer.
func NewPhotoService(
	photoStore store.PhotoStore,
	blobStore store.BlobStore,
	renderer ThumbnailRenderer,
	opts PhotoServiceOptions,
	logger *slog.Logger,
) *PhotoServiceImpl {
	if photoStore == nil || blobStore == nil {
		// ALLOW-PANIC
		panic("photo store and blob store cannot be nil")
	}
	if opts.ThumbnailWidth <= 0 {
		opts.ThumbnailWidth = DefaultThumbnailWidth
	}
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = DefaultMaxPixels
	}
	if renderer == nil {
		renderer = JPEGThumbnailRenderer{MaxPixels: opts.MaxPixels}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PhotoServiceImpl{
		photoStore: photoStore,
		blobStore:  blobStore,
		reclaimer:  blobReclaimer{blobs: blobStore},
		renderer:   renderer,
		opts:       opts,
		logger:     logger.With(slog.String("component", "photo_service")),
	}
}

// SetEventEmitter hands the deletion of orphaned images to emitter's
// handlers. Set it before serving requests.
func (s *PhotoServiceImpl) SetEventEmitter(emitter events.EventEmitter) {
	s.reclaimer.emitter = emitter
}

// PhotoByID implements PhotoQueryService.
func (s *PhotoServiceImpl) PhotoByID(ctx context.Context, photoID string) (*domain.Photo, error) {
	photo, err := s.photoStore.GetByID(ctx, photoID)
	if err != nil {
		return nil, photoError(photoID, err, "retrieve photo")
	}
	return photo, nil
}

// OriginalByID implements PhotoQueryService.
func (s *PhotoServiceImpl) OriginalByID(ctx context.Context, photoID string) (*Image, error) {
	photo, err := s.PhotoByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	blob, err := s.blobStore.Get(ctx, photo.BlobKey)
	if err != nil {
		// A row without content is reported like a missing photo.
		return nil, photoError(photoID, err, "retrieve photo content")
	}

	contentType := blob.ContentType
	if contentType == "" {
		contentType = JPEGContentType
	}
	return &Image{
		Content:     blob.Body,
		ContentType: contentType,
		Size:        blob.ContentLength,
	}, nil
}

// ThumbnailByID implements PhotoQueryService.
func (s *PhotoServiceImpl) ThumbnailByID(ctx context.Context, photoID string) (*Image, error) {
	original, err := s.OriginalByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = original.Content.Close() }()

	thumb, err := s.renderer.Render(original.Content, s.opts.ThumbnailWidth)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to render thumbnail",
			slog.String("photo_id", photoID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to render thumbnail: %w", err)
	}

	return &Image{
		Content:     io.NopCloser(bytes.NewReader(thumb)),
		ContentType: JPEGContentType,
		Size:        int64(len(thumb)),
	}, nil
}

// UpdateMetadata implements PhotoCommandService.
func (s *PhotoServiceImpl) UpdateMetadata(
	ctx context.Context,
	photoID, description string,
	tags []string,
) (*domain.Photo, error) {
	photo, err := s.PhotoByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	photo.UpdateMetadata(description, tags)
	if err := s.photoStore.UpdateMetadata(ctx, photo); err != nil {
		return nil, photoError(photoID, err, "update photo metadata")
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("photo metadata updated",
		slog.String("photo_id", photoID),
		slog.Int("tag_count", len(photo.Tags)))
	return photo, nil
}

// DeletePhoto implements PhotoCommandService. The row is removed first; a
// failure to remove the image afterwards is logged and otherwise ignored.
func (s *PhotoServiceImpl) DeletePhoto(ctx context.Context, photoID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	photo, err := s.PhotoByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := s.photoStore.Delete(ctx, photoID); err != nil {
		return photoError(photoID, err, "delete photo")
	}

	s.reclaimer.reclaim(ctx, log, photo.BlobKey)
	log.Info("photo deleted", slog.String("photo_id", photoID))
	return nil
}

// UploadPhoto implements PhotoCommandService. Only JPEG content is accepted.
func (s *PhotoServiceImpl) UploadPhoto(
	ctx context.Context,
	principal domain.Principal,
	albumID, filename string,
	content []byte,
) (*domain.Photo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.checkUpload(content); err != nil {
		return nil, err
	}

	photo, err := domain.NewPhoto(albumID, principal.ID, cleanFilename(filename))
	if err != nil {
		return nil, validationError(err, "create photo")
	}

	size := int64(len(content))
	if err := s.blobStore.Put(ctx, photo.BlobKey, JPEGContentType, bytes.NewReader(content), size); err != nil {
		return nil, fmt.Errorf("failed to store photo content: %w", err)
	}

	if err := s.photoStore.Create(ctx, photo); err != nil {
		s.reclaimer.reclaim(ctx, log, photo.BlobKey)
		return nil, albumError(albumID, err, "create photo")
	}

	log.Info("photo uploaded",
		slog.String("photo_id", photo.ID),
		slog.String("album_id", albumID),
		slog.Int64("size", size))
	return photo, nil
}

// checkUpload rejects empty or non-JPEG content, and content too large in
// bytes or in declared pixels.
func (s *PhotoServiceImpl) checkUpload(content []byte) error {
	if len(content) == 0 {
		return domain.NewValidationError("file", "must not be empty")
	}
	if s.opts.MaxUploadBytes > 0 && int64(len(content)) > s.opts.MaxUploadBytes {
		return domain.NewValidationError("file",
			fmt.Sprintf("must not exceed %d bytes", s.opts.MaxUploadBytes))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return domain.NewUnsupportedMediaTypeError("unknown")
	}
	if format != "jpeg" {
		return domain.NewUnsupportedMediaTypeError(format)
	}
	if err := checkPixels(cfg, s.opts.MaxPixels); err != nil {
		return domain.NewValidationError("file", err.Error())
	}
	return nil
}

// cleanFilename strips any directory part a client sent with the file name.
func cleanFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
