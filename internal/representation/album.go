package representation

import (
	"encoding/json"
	"time"
)

// PhotoShortRepr is the summary of a photo embedded in an album.
type PhotoShortRepr struct {
	meta        MetaRepr
	photoID     string
	description string
}

// PhotoShortReprBuilder stages a PhotoShortRepr.
type PhotoShortReprBuilder struct {
	meta        MetaRepr
	photoID     string
	description string
}

// NewPhotoShort starts a PhotoShortRepr.
func NewPhotoShort() *PhotoShortReprBuilder {
	return &PhotoShortReprBuilder{meta: NewMeta().Build()}
}

// Meta sets the _meta envelope.
func (b *PhotoShortReprBuilder) Meta(meta MetaRepr) *PhotoShortReprBuilder {
	b.meta = meta
	return b
}

// ID sets the photo ID.
func (b *PhotoShortReprBuilder) ID(photoID string) *PhotoShortReprBuilder {
	b.photoID = photoID
	return b
}

// Description sets the description.
func (b *PhotoShortReprBuilder) Description(description string) *PhotoShortReprBuilder {
	b.description = description
	return b
}

// Build freezes the builder.
func (b *PhotoShortReprBuilder) Build() PhotoShortRepr {
	return PhotoShortRepr{
		meta:        MetaRepr{links: cloneLinks(b.meta.links)},
		photoID:     b.photoID,
		description: b.description,
	}
}

// PhotoID returns the photo ID.
func (r PhotoShortRepr) PhotoID() string { return r.photoID }

// Meta returns the _meta envelope.
func (r PhotoShortRepr) Meta() MetaRepr { return r.meta }

// MarshalJSON implements json.Marshaler.
func (r PhotoShortRepr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Meta        MetaRepr `json:"_meta"`
		PhotoID     string   `json:"photoId"`
		Description string   `json:"description"`
	}{r.meta, r.photoID, r.description})
}

// AlbumRepr is a single album with its photos.
type AlbumRepr struct {
	meta      MetaRepr
	albumID   string
	name      string
	createdAt time.Time
	photos    []PhotoShortRepr
}

// AlbumReprBuilder stages an AlbumRepr.
type AlbumReprBuilder struct {
	meta      MetaRepr
	albumID   string
	name      string
	createdAt time.Time
	photos    []PhotoShortRepr
}

// NewAlbum starts an AlbumRepr.
func NewAlbum() *AlbumReprBuilder {
	return &AlbumReprBuilder{
		meta:   NewMeta().Build(),
		photos: []PhotoShortRepr{},
	}
}

// Meta sets the _meta envelope.
func (b *AlbumReprBuilder) Meta(meta MetaRepr) *AlbumReprBuilder {
	b.meta = meta
	return b
}

// ID sets the album ID.
func (b *AlbumReprBuilder) ID(albumID string) *AlbumReprBuilder {
	b.albumID = albumID
	return b
}

// Name sets the album name.
func (b *AlbumReprBuilder) Name(name string) *AlbumReprBuilder {
	b.name = name
	return b
}

// CreatedAt sets the creation time.
func (b *AlbumReprBuilder) CreatedAt(createdAt time.Time) *AlbumReprBuilder {
	b.createdAt = createdAt
	return b
}

// Photos appends photo summaries. Repeated calls accumulate.
func (b *AlbumReprBuilder) Photos(photos ...PhotoShortRepr) *AlbumReprBuilder {
	b.photos = append(b.photos, photos...)
	return b
}

// Build freezes the builder.
func (b *AlbumReprBuilder) Build() AlbumRepr {
	photos := make([]PhotoShortRepr, len(b.photos))
	copy(photos, b.photos)
	return AlbumRepr{
		meta:      MetaRepr{links: cloneLinks(b.meta.links)},
		albumID:   b.albumID,
		name:      b.name,
		createdAt: b.createdAt,
		photos:    photos,
	}
}

// AlbumID returns the album ID.
func (r AlbumRepr) AlbumID() string { return r.albumID }

// Name returns the album name.
func (r AlbumRepr) Name() string { return r.name }

// Meta returns the _meta envelope.
func (r AlbumRepr) Meta() MetaRepr { return r.meta }

// Photos returns a copy of the photo summaries.
func (r AlbumRepr) Photos() []PhotoShortRepr {
	photos := make([]PhotoShortRepr, len(r.photos))
	copy(photos, r.photos)
	return photos
}

// MarshalJSON implements json.Marshaler.
func (r AlbumRepr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Meta      MetaRepr         `json:"_meta"`
		AlbumID   string           `json:"albumId"`
		Name      string           `json:"name"`
		CreatedAt time.Time        `json:"createdAt"`
		Photos    []PhotoShortRepr `json:"photos"`
	}{r.meta, r.albumID, r.name, r.createdAt, r.Photos()})
}

// AlbumShortRepr is the summary of an album listed in the gallery.
type AlbumShortRepr struct {
	meta       MetaRepr
	albumID    string
	name       string
	photoCount int
}

// AlbumShortReprBuilder stages an AlbumShortRepr.
type AlbumShortReprBuilder struct {
	meta       MetaRepr
	albumID    string
	name       string
	photoCount int
}

// NewAlbumShort starts an AlbumShortRepr.
func NewAlbumShort() *AlbumShortReprBuilder {
	return &AlbumShortReprBuilder{meta: NewMeta().Build()}
}

// Meta sets the _meta envelope.
func (b *AlbumShortReprBuilder) Meta(meta MetaRepr) *AlbumShortReprBuilder {
	b.meta = meta
	return b
}

// ID sets the album ID.
func (b *AlbumShortReprBuilder) ID(albumID string) *AlbumShortReprBuilder {
	b.albumID = albumID
	return b
}

// Name sets the album name.
func (b *AlbumShortReprBuilder) Name(name string) *AlbumShortReprBuilder {
	b.name = name
	return b
}

// PhotoCount sets the number of photos in the album.
func (b *AlbumShortReprBuilder) PhotoCount(count int) *AlbumShortReprBuilder {
	b.photoCount = count
	return b
}

// Build freezes the builder.
func (b *AlbumShortReprBuilder) Build() AlbumShortRepr {
	return AlbumShortRepr{
		meta:       MetaRepr{links: cloneLinks(b.meta.links)},
		albumID:    b.albumID,
		name:       b.name,
		photoCount: b.photoCount,
	}
}

// AlbumID returns the album ID.
func (r AlbumShortRepr) AlbumID() string { return r.albumID }

// Name returns the album name.
func (r AlbumShortRepr) Name() string { return r.name }

// PhotoCount returns the number of photos.
func (r AlbumShortRepr) PhotoCount() int { return r.photoCount }

// Meta returns the _meta envelope.
func (r AlbumShortRepr) Meta() MetaRepr { return r.meta }

// MarshalJSON implements json.Marshaler.
func (r AlbumShortRepr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Meta       MetaRepr `json:"_meta"`
		AlbumID    string   `json:"albumId"`
		Name       string   `json:"name"`
		PhotoCount int      `json:"photoCount"`
	}{r.meta, r.albumID, r.name, r.photoCount})
}

// GalleryRepr lists a user's albums.
type GalleryRepr struct {
	meta   MetaRepr
	albums []AlbumShortRepr
}

// GalleryReprBuilder stages a GalleryRepr.
type GalleryReprBuilder struct {
	meta   MetaRepr
	albums []AlbumShortRepr
}

// NewGallery starts a GalleryRepr.
func NewGallery() *GalleryReprBuilder {
	return &GalleryReprBuilder{
		meta:   NewMeta().Build(),
		albums: []AlbumShortRepr{},
	}
}

// Meta sets the _meta envelope.
func (b *GalleryReprBuilder) Meta(meta MetaRepr) *GalleryReprBuilder {
	b.meta = meta
	return b
}

// Albums appends album summaries. Repeated calls accumulate.
func (b *GalleryReprBuilder) Albums(albums ...AlbumShortRepr) *GalleryReprBuilder {
	b.albums = append(b.albums, albums...)
	return b
}

// Build freezes the builder.
func (b *GalleryReprBuilder) Build() GalleryRepr {
	albums := make([]AlbumShortRepr, len(b.albums))
	copy(albums, b.albums)
	return GalleryRepr{
		meta:   MetaRepr{links: cloneLinks(b.meta.links)},
		albums: albums,
	}
}

// Meta returns the _meta envelope.
func (r GalleryRepr) Meta() MetaRepr { return r.meta }

// Albums returns a copy of the album summaries.
func (r GalleryRepr) Albums() []AlbumShortRepr {
	albums := make([]AlbumShortRepr, len(r.albums))
	copy(albums, r.albums)
	return albums
}

// MarshalJSON implements json.Marshaler.
func (r GalleryRepr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Meta   MetaRepr         `json:"_meta"`
		Albums []AlbumShortRepr `json:"albums"`
	}{r.meta, r.Albums()})
}
