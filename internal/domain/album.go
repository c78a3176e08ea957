package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxAlbumNameLength bounds album names.
const MaxAlbumNameLength = 200

// Album validation errors
var (
	ErrAlbumIDEmpty      = errors.New("album ID cannot be empty")
	ErrAlbumOwnerIDEmpty = errors.New("album owner ID cannot be empty")
	ErrAlbumNameEmpty    = errors.New("album name cannot be empty")
	ErrAlbumNameTooLong  = errors.New("album name is too long")
)

// Album is a named, owned collection of photos.
type Album struct {
	ID        string
	OwnerID   uuid.UUID
	Name      string
	PhotoIDs  []string // ordered by upload time
	CreatedAt time.Time
}

// NewAlbum creates an album owned by ownerID with a generated ID.
func NewAlbum(ownerID uuid.UUID, name string) (*Album, error) {
	album := &Album{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(name),
		PhotoIDs:  []string{},
		CreatedAt: time.Now().UTC(),
	}

	if err := album.Validate(); err != nil {
		return nil, err
	}

	return album, nil
}

// Validate checks the album's invariants.
func (a *Album) Validate() error {
	if a.ID == "" {
		return ErrAlbumIDEmpty
	}
	if a.OwnerID == uuid.Nil {
		return ErrAlbumOwnerIDEmpty
	}
	if a.Name == "" {
		return ErrAlbumNameEmpty
	}
	if len(a.Name) > MaxAlbumNameLength {
		return ErrAlbumNameTooLong
	}
	return nil
}

// Owner implements Owned. A nil receiver has no owner.
func (a *Album) Owner() uuid.UUID {
	if a == nil {
		return uuid.Nil
	}
	return a.OwnerID
}
