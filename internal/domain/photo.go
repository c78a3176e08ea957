package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Photo validation errors
var (
	ErrPhotoIDEmpty       = errors.New("photo ID cannot be empty")
	ErrPhotoAlbumIDEmpty  = errors.New("photo album ID cannot be empty")
	ErrPhotoOwnerIDEmpty  = errors.New("photo owner ID cannot be empty")
	ErrPhotoBlobKeyEmpty  = errors.New("photo blob key cannot be empty")
	ErrPhotoFilenameEmpty = errors.New("photo original filename cannot be empty")
)

// Photo is a single image within an album. The binary content lives in the
// blob store under BlobKey.
type Photo struct {
	ID               string
	AlbumID          string
	OwnerID          uuid.UUID
	OriginalFilename string
	BlobKey          string
	Description      string
	Tags             []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPhoto creates a photo in albumID with a generated ID and empty metadata.
func NewPhoto(albumID string, ownerID uuid.UUID, originalFilename string) (*Photo, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	photo := &Photo{
		ID:               id,
		AlbumID:          albumID,
		OwnerID:          ownerID,
		OriginalFilename: originalFilename,
		BlobKey:          BlobKeyFor(albumID, id),
		Tags:             []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := photo.Validate(); err != nil {
		return nil, err
	}

	return photo, nil
}

// BlobKeyFor returns the blob key under which a photo's original is stored.
func BlobKeyFor(albumID, photoID string) string {
	return "albums/" + albumID + "/" + photoID + ".jpg"
}

// Validate checks the photo's invariants.
func (p *Photo) Validate() error {
	switch {
	case p.ID == "":
		return ErrPhotoIDEmpty
	case p.AlbumID == "":
		return ErrPhotoAlbumIDEmpty
	case p.OwnerID == uuid.Nil:
		return ErrPhotoOwnerIDEmpty
	case p.BlobKey == "":
		return ErrPhotoBlobKeyEmpty
	case p.OriginalFilename == "":
		return ErrPhotoFilenameEmpty
	}
	return nil
}

// Owner implements Owned. A nil receiver has no owner.
func (p *Photo) Owner() uuid.UUID {
	if p == nil {
		return uuid.Nil
	}
	return p.OwnerID
}

// UpdateMetadata replaces the description and tags and bumps UpdatedAt.
// Tags are trimmed, empty tags dropped and duplicates removed keeping the
// first occurrence, so the stored order is the order the caller sent.
func (p *Photo) UpdateMetadata(description string, tags []string) {
	p.Description = description
	p.Tags = NormalizeTags(tags)
	p.UpdatedAt = time.Now().UTC()
}

// NormalizeTags trims, drops empties and de-duplicates tags preserving order.
// It never returns nil.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
