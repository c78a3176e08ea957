package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/photoalbum-api/internal/api/shared"
	"github.com/phrazzld/photoalbum-api/internal/converter"
	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/link"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/service"
	"github.com/phrazzld/photoalbum-api/internal/service/auth"
)

// UploadFormField is the multipart field carrying an uploaded photo.
const UploadFormField = "file"

// multipartOverhead is allowed on top of the image size for form boundaries
// and headers.
const multipartOverhead = 1 << 20

// DefaultMaxUploadBytes applies when no upload limit is configured.
const DefaultMaxUploadBytes = 20 << 20

// AlbumHandler serves /albums and /albums/{albumId}.
type AlbumHandler struct {
	albums         service.AlbumQueryService
	albumCommands  service.AlbumCommandService
	photoCommands  service.PhotoCommandService
	authz          auth.Authorization
	links          *link.Scheme
	albumConv      *converter.AlbumReprConverter
	albumShortConv *converter.AlbumShortReprConverter
	galleryConv    *converter.GalleryReprConverter
	photoConv      *converter.PhotoMetadataReprConverter
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewAlbumHandler creates an AlbumHandler. maxUploadBytes bounds the image
// size of uploads; zero selects DefaultMaxUploadBytes.
func NewAlbumHandler(
	albums service.AlbumQueryService,
	albumCommands service.AlbumCommandService,
	photoCommands service.PhotoCommandService,
	authz auth.Authorization,
	links *link.Scheme,
	maxUploadBytes int64,
	logger *slog.Logger,
) *AlbumHandler {
	if albums == nil || albumCommands == nil || photoCommands == nil || authz == nil {
		// ALLOW-PANIC
		panic("album handler dependencies cannot be nil")
	}
	if links == nil {
		links = link.NewScheme()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AlbumHandler{
		albums:         albums,
		albumCommands:  albumCommands,
		photoCommands:  photoCommands,
		authz:          authz,
		links:          links,
		albumConv:      converter.NewAlbumReprConverter(links),
		albumShortConv: converter.NewAlbumShortReprConverter(links),
		galleryConv:    converter.NewGalleryReprConverter(links),
		photoConv:      converter.NewPhotoMetadataReprConverter(links),
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With(slog.String("component", "album_handler")),
	}
}

// fetchAuthorized loads the addressed album and checks that the principal
// may act on it.
func (h *AlbumHandler) fetchAuthorized(r *http.Request) (domain.Principal, *domain.Album, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return principal, nil, err
	}

	album, err := h.albums.AlbumByID(r.Context(), pathParam(r, AlbumIDParam))
	if err != nil {
		return principal, nil, err
	}

	if err := authorize(h.authz, principal, album); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("album access denied",
			slog.String("album_id", album.ID))
		return principal, nil, err
	}
	return principal, album, nil
}

// ListAlbums handles GET /albums: the gallery of the principal's albums.
func (h *AlbumHandler) ListAlbums(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	albums, err := h.albums.AlbumsByOwner(r.Context(), principal.ID)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.galleryConv.Convert(albums))
	return nil
}

// CreateAlbum handles POST /albums.
func (h *AlbumHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	var req CreateAlbumRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}

	album, err := h.albumCommands.CreateAlbum(r.Context(), principal.ID, req.Name)
	if err != nil {
		return err
	}

	w.Header().Set("Location", h.links.ToAlbum(album.ID).String())
	shared.RespondWithJSON(w, r, http.StatusCreated, h.albumShortConv.Convert(album))
	return nil
}

// ViewAlbum handles GET /albums/{albumId}.
func (h *AlbumHandler) ViewAlbum(w http.ResponseWriter, r *http.Request) error {
	_, album, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	photos, err := h.albums.PhotosOf(r.Context(), album)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.albumConv.Convert(album, photos))
	return nil
}

// DeleteAlbum handles DELETE /albums/{albumId}.
func (h *AlbumHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request) error {
	_, album, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	if err := h.albumCommands.DeleteAlbum(r.Context(), album.ID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// UploadPhoto handles POST /albums/{albumId} with a multipart form whose
// "file" field carries a JPEG image.
func (h *AlbumHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) error {
	principal, album, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	filename, content, err := h.readUpload(w, r)
	if err != nil {
		return err
	}

	photo, err := h.photoCommands.UploadPhoto(r.Context(), principal, album.ID, filename, content)
	if err != nil {
		return err
	}

	w.Header().Set("Location", h.links.ToPhoto(photo.AlbumID, photo.ID).String())
	shared.RespondWithJSON(w, r, http.StatusCreated, h.photoConv.Convert(photo))
	return nil
}

// readUpload returns the name and content of the uploaded file.
func (h *AlbumHandler) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile(UploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, domain.NewValidationError(UploadFormField, "is too large")
		}
		return "", nil, domain.NewValidationError(UploadFormField, "multipart field is required")
	}
	defer func() { _ = file.Close() }()

	// One byte past the limit lets the service report oversized files.
	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return "", nil, domain.NewValidationError(UploadFormField, "could not be read")
	}
	return header.Filename, content, nil
}
