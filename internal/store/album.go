package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/photoalbum-api/internal/domain"
)

// AlbumStore defines the interface for album persistence.
type AlbumStore interface {
	// Create saves a new album.
	// Returns ErrInvalidEntity if the album fails validation.
	Create(ctx context.Context, album *domain.Album) error

	// GetByID retrieves an album with the IDs of its photos in upload order.
	// Returns ErrAlbumNotFound if the album does not exist.
	GetByID(ctx context.Context, id string) (*domain.Album, error)

	// ListByOwner returns the owner's albums, oldest first. Each album
	// carries its photo IDs.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error)

	// Delete removes an album and, through the foreign key, its photos.
	// Returns ErrAlbumNotFound if the album does not exist.
	Delete(ctx context.Context, id string) error

	// WithTx returns an AlbumStore bound to the transaction.
	WithTx(tx *sql.Tx) AlbumStore
}
