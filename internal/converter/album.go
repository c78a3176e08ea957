package converter

import (
	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/link"
	"github.com/phrazzld/photoalbum-api/internal/representation"
)

// AlbumReprConverter combines an album with its photos.
type AlbumReprConverter struct {
	links  *link.Scheme
	photos *PhotoShortReprConverter
}

var _ BiConverter[*domain.Album, []*domain.Photo, representation.AlbumRepr] = (*AlbumReprConverter)(nil)

// NewAlbumReprConverter creates a converter using the given link scheme.
func NewAlbumReprConverter(links *link.Scheme) *AlbumReprConverter {
	if links == nil {
		links = link.NewScheme()
	}
	return &AlbumReprConverter{
		links:  links,
		photos: NewPhotoShortReprConverter(links),
	}
}

// Convert builds the album representation. Photos are emitted in the order given.
func (c *AlbumReprConverter) Convert(album *domain.Album, photos []*domain.Photo) representation.AlbumRepr {
	b := representation.NewAlbum().
		Meta(representation.NewMeta().
			Link(representation.RelSelf, c.links.ToAlbum(album.ID)).
			Link(representation.RelGallery, c.links.ToGallery()).
			Build()).
		ID(album.ID).
		Name(album.Name).
		CreatedAt(album.CreatedAt)

	for _, photo := range photos {
		b.Photos(c.photos.Convert(photo))
	}
	return b.Build()
}

// AlbumShortReprConverter turns an album into a gallery entry.
type AlbumShortReprConverter struct {
	links *link.Scheme
}

var _ Converter[*domain.Album, representation.AlbumShortRepr] = (*AlbumShortReprConverter)(nil)

// NewAlbumShortReprConverter creates a converter using the given link scheme.
func NewAlbumShortReprConverter(links *link.Scheme) *AlbumShortReprConverter {
	if links == nil {
		links = link.NewScheme()
	}
	return &AlbumShortReprConverter{links: links}
}

// Convert builds the album summary.
func (c *AlbumShortReprConverter) Convert(album *domain.Album) representation.AlbumShortRepr {
	return representation.NewAlbumShort().
		Meta(representation.NewMeta().
			Link(representation.RelSelf, c.links.ToAlbum(album.ID)).
			Build()).
		ID(album.ID).
		Name(album.Name).
		PhotoCount(len(album.PhotoIDs)).
		Build()
}

// GalleryReprConverter lists albums.
type GalleryReprConverter struct {
	links  *link.Scheme
	albums *AlbumShortReprConverter
}

var _ Converter[[]*domain.Album, representation.GalleryRepr] = (*GalleryReprConverter)(nil)

// NewGalleryReprConverter creates a converter using the given link scheme.
func NewGalleryReprConverter(links *link.Scheme) *GalleryReprConverter {
	if links == nil {
		links = link.NewScheme()
	}
	return &GalleryReprConverter{
		links:  links,
		albums: NewAlbumShortReprConverter(links),
	}
}

// Convert builds the gallery.
func (c *GalleryReprConverter) Convert(albums []*domain.Album) representation.GalleryRepr {
	b := representation.NewGallery().
		Meta(representation.NewMeta().
			Link(representation.RelSelf, c.links.ToGallery()).
			Build())

	for _, album := range albums {
		b.Albums(c.albums.Convert(album))
	}
	return b.Build()
}
