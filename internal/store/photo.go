package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/photoalbum-api/internal/domain"
)

// PhotoStore defines the interface for photo metadata persistence.
// Image bytes are kept in a BlobStore under Photo.BlobKey.
type PhotoStore interface {
	// Create saves a new photo.
	// Returns ErrAlbumNotFound if the album does not exist.
	Create(ctx context.Context, photo *domain.Photo) error

	// GetByID retrieves a photo.
	// Returns ErrPhotoNotFound if the photo does not exist.
	GetByID(ctx context.Context, id string) (*domain.Photo, error)

	// ListByAlbum returns an album's photos in upload order.
	ListByAlbum(ctx context.Context, albumID string) ([]*domain.Photo, error)

	// UpdateMetadata replaces description and tags and stores UpdatedAt.
	// Returns ErrPhotoNotFound if the photo does not exist.
	UpdateMetadata(ctx context.Context, photo *domain.Photo) error

	// Delete removes a photo.
	// Returns ErrPhotoNotFound if the photo does not exist.
	Delete(ctx context.Context, id string) error

	// WithTx returns a PhotoStore bound to the transaction.
	WithTx(tx *sql.Tx) PhotoStore
}
