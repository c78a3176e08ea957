// Package link builds the canonical URIs of every addressable resource of the
// photo album API. All functions are pure: they only substitute identifiers
// into fixed templates and never validate them.
package link

import (
	"net/url"
	"strings"
)

// URI templates of the addressable resources.
const (
	GalleryTemplate   = "/albums"
	AlbumTemplate     = "/albums/{albumId}"
	PhotoTemplate     = "/albums/{albumId}/{photoId}"
	ThumbnailTemplate = "/albums/{albumId}/{photoId}/thumbnail"
	MetadataTemplate  = "/albums/{albumId}/{photoId}/metadata"
)

// DownloadParam is the query flag that turns a photo view into an attachment.
const DownloadParam = "download"

// Scheme produces resource URIs. The zero value is ready to use.
type Scheme struct{}

// NewScheme returns a link scheme.
func NewScheme() *Scheme {
	return &Scheme{}
}

// ToGallery returns the URI of the album listing.
func (s *Scheme) ToGallery() *url.URL {
	return expand(GalleryTemplate, nil)
}

// ToAlbum returns the URI of a single album.
func (s *Scheme) ToAlbum(albumID string) *url.URL {
	return expand(AlbumTemplate, map[string]string{"albumId": albumID})
}

// ToPhoto returns the URI of a photo's original image.
func (s *Scheme) ToPhoto(albumID, photoID string) *url.URL {
	return withAlbumAndPhoto(PhotoTemplate, albumID, photoID)
}

// ToThumbnail returns the URI of a photo's thumbnail.
func (s *Scheme) ToThumbnail(albumID, photoID string) *url.URL {
	return withAlbumAndPhoto(ThumbnailTemplate, albumID, photoID)
}

// ToMetadata returns the URI of a photo's metadata.
func (s *Scheme) ToMetadata(albumID, photoID string) *url.URL {
	return withAlbumAndPhoto(MetadataTemplate, albumID, photoID)
}

// ToDownload returns ToPhoto with download=true.
func (s *Scheme) ToDownload(albumID, photoID string) *url.URL {
	u := withAlbumAndPhoto(PhotoTemplate, albumID, photoID)
	q := url.Values{}
	q.Set(DownloadParam, "true")
	u.RawQuery = q.Encode()
	return u
}

func withAlbumAndPhoto(template, albumID, photoID string) *url.URL {
	return expand(template, map[string]string{
		"albumId": albumID,
		"photoId": photoID,
	})
}

// expand substitutes {name} variables. Path holds the decoded form and
// RawPath the escaped one, so String() emits a properly encoded URI.
func expand(template string, vars map[string]string) *url.URL {
	decoded := template
	encoded := template
	for name, value := range vars {
		placeholder := "{" + name + "}"
		decoded = strings.ReplaceAll(decoded, placeholder, value)
		encoded = strings.ReplaceAll(encoded, placeholder, url.PathEscape(value))
	}

	u := &url.URL{Path: decoded}
	if encoded != decoded {
		u.RawPath = encoded
	}
	return u
}
