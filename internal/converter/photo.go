package converter

import (
	"net/url"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/link"
	"github.com/phrazzld/photoalbum-api/internal/representation"
)

// PhotoMetadataReprConverter turns a Photo into its metadata representation.
type PhotoMetadataReprConverter struct {
	links *link.Scheme
}

var _ Converter[*domain.Photo, representation.PhotoMetadataRepr] = (*PhotoMetadataReprConverter)(nil)

// NewPhotoMetadataReprConverter creates a converter using the given link scheme.
func NewPhotoMetadataReprConverter(links *link.Scheme) *PhotoMetadataReprConverter {
	if links == nil {
		links = link.NewScheme()
	}
	return &PhotoMetadataReprConverter{links: links}
}

// Convert builds the metadata representation. The photo's tags are copied.
func (c *PhotoMetadataReprConverter) Convert(photo *domain.Photo) representation.PhotoMetadataRepr {
	return representation.NewPhotoMetadata().
		Meta(photoMeta(c.links, photo, c.links.ToMetadata(photo.AlbumID, photo.ID), representation.RelPhoto)).
		ID(photo.ID).
		Description(photo.Description).
		Tags(photo.Tags...).
		Build()
}

// PhotoShortReprConverter turns a Photo into the summary embedded in albums.
type PhotoShortReprConverter struct {
	links *link.Scheme
}

var _ Converter[*domain.Photo, representation.PhotoShortRepr] = (*PhotoShortReprConverter)(nil)

// NewPhotoShortReprConverter creates a converter using the given link scheme.
func NewPhotoShortReprConverter(links *link.Scheme) *PhotoShortReprConverter {
	if links == nil {
		links = link.NewScheme()
	}
	return &PhotoShortReprConverter{links: links}
}

// Convert builds the summary representation.
func (c *PhotoShortReprConverter) Convert(photo *domain.Photo) representation.PhotoShortRepr {
	return representation.NewPhotoShort().
		Meta(photoMeta(c.links, photo, c.links.ToPhoto(photo.AlbumID, photo.ID), representation.RelMetadata)).
		ID(photo.ID).
		Description(photo.Description).
		Build()
}

// photoMeta links a photo to its siblings. sibling is the relation that is
// not already covered by self: the photo itself or its metadata.
func photoMeta(links *link.Scheme, photo *domain.Photo, self *url.URL, sibling string) representation.MetaRepr {
	b := representation.NewMeta().Link(representation.RelSelf, self)
	switch sibling {
	case representation.RelPhoto:
		b.Link(representation.RelPhoto, links.ToPhoto(photo.AlbumID, photo.ID))
	case representation.RelMetadata:
		b.Link(representation.RelMetadata, links.ToMetadata(photo.AlbumID, photo.ID))
	}
	return b.
		Link(representation.RelThumbnail, links.ToThumbnail(photo.AlbumID, photo.ID)).
		Link(representation.RelDownload, links.ToDownload(photo.AlbumID, photo.ID)).
		Link(representation.RelAlbum, links.ToAlbum(photo.AlbumID)).
		Build()
}
