package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/photoalbum-api/internal/api/shared"
	"github.com/phrazzld/photoalbum-api/internal/converter"
	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/representation"
	"github.com/phrazzld/photoalbum-api/internal/service"
	"github.com/phrazzld/photoalbum-api/internal/service/auth"
)

// Preflight response header values of the photo resource.
const (
	PreflightAllowOrigin  = "*"
	PreflightAllowMethods = "GET,PUT,DELETE"
	PreflightAllowHeaders = "Origin, Content-Type, Accept, Authorization"
)

// PhotoHandler serves /albums/{albumId}/{photoId} and its sub-resources.
// Every operation fetches the photo, checks authorization and only then
// reads content or mutates state.
type PhotoHandler struct {
	queries   service.PhotoQueryService
	commands  service.PhotoCommandService
	authz     auth.Authorization
	converter converter.Converter[*domain.Photo, representation.PhotoMetadataRepr]
	logger    *slog.Logger
}

// NewPhotoHandler creates a PhotoHandler.
func NewPhotoHandler(
	queries service.PhotoQueryService,
	commands service.PhotoCommandService,
	authz auth.Authorization,
	conv converter.Converter[*domain.Photo, representation.PhotoMetadataRepr],
	logger *slog.Logger,
) *PhotoHandler {
	if queries == nil || commands == nil || authz == nil || conv == nil {
		// ALLOW-PANIC
		panic("photo handler dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PhotoHandler{
		queries:   queries,
		commands:  commands,
		authz:     authz,
		converter: conv,
		logger:    logger.With(slog.String("component", "photo_handler")),
	}
}

// fetchAuthorized loads the addressed photo and checks that the principal
// may act on it. A photo outside the addressed album counts as missing.
func (h *PhotoHandler) fetchAuthorized(r *http.Request) (*domain.Photo, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return nil, err
	}

	albumID := pathParam(r, AlbumIDParam)
	photoID := pathParam(r, PhotoIDParam)

	photo, err := h.queries.PhotoByID(r.Context(), photoID)
	if err != nil {
		return nil, err
	}
	if photo.AlbumID != albumID {
		return nil, domain.NewPhotoDoesNotExistError(photoID)
	}

	if err := authorize(h.authz, principal, photo); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("photo access denied",
			slog.String("photo_id", photoID))
		return nil, err
	}
	return photo, nil
}

// ViewPhoto handles GET /albums/{albumId}/{photoId}. With download=true the
// image is sent as an attachment named after the uploaded file.
func (h *PhotoHandler) ViewPhoto(w http.ResponseWriter, r *http.Request) error {
	download, err := downloadRequested(r)
	if err != nil {
		return err
	}

	photo, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	img, err := h.queries.OriginalByID(r.Context(), photo.ID)
	if err != nil {
		return err
	}

	if download {
		w.Header().Set("Content-Disposition", contentDisposition(photo.OriginalFilename))
	}
	h.writeImage(w, r, img)
	return nil
}

// ViewThumbnail handles GET /albums/{albumId}/{photoId}/thumbnail.
func (h *PhotoHandler) ViewThumbnail(w http.ResponseWriter, r *http.Request) error {
	photo, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	img, err := h.queries.ThumbnailByID(r.Context(), photo.ID)
	if err != nil {
		return err
	}

	h.writeImage(w, r, img)
	return nil
}

// ViewMetadata handles GET /albums/{albumId}/{photoId}/metadata.
func (h *PhotoHandler) ViewMetadata(w http.ResponseWriter, r *http.Request) error {
	photo, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.converter.Convert(photo))
	return nil
}

// UpdateMetadata handles PUT /albums/{albumId}/{photoId}/metadata.
func (h *PhotoHandler) UpdateMetadata(w http.ResponseWriter, r *http.Request) error {
	var req UpdateMetadataRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}

	photo, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	if _, err := h.commands.UpdateMetadata(r.Context(), photo.ID, req.Description, req.Tags); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// DeletePhoto handles DELETE /albums/{albumId}/{photoId}.
func (h *PhotoHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) error {
	photo, err := h.fetchAuthorized(r)
	if err != nil {
		return err
	}

	if err := h.commands.DeletePhoto(r.Context(), photo.ID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Preflight handles OPTIONS /albums/{albumId}/{photoId}. It needs no principal
// and touches no state.
func (h *PhotoHandler) Preflight(w http.ResponseWriter, _ *http.Request) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", PreflightAllowOrigin)
	header.Set("Access-Control-Allow-Methods", PreflightAllowMethods)
	header.Set("Access-Control-Allow-Headers", PreflightAllowHeaders)
	header.Set("Allow", PreflightAllowMethods)
	w.WriteHeader(http.StatusOK)
}

// writeImage streams img. Failures after the header has been written can only
// be logged.
func (h *PhotoHandler) writeImage(w http.ResponseWriter, r *http.Request, img *service.Image) {
	defer func() { _ = img.Content.Close() }()

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(img.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, img.Content); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("failed to stream image",
			slog.String("error", err.Error()))
	}
}

func contentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
