package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/photoalbum-api/internal/api/shared"
	"github.com/phrazzld/photoalbum-api/internal/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withPrincipal stands in for the authentication middleware.
func withPrincipal(principal *domain.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			if principal != nil {
				ctx = shared.WithPrincipal(ctx, *principal)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newTestRouter mounts the handlers the way the server does.
func newTestRouter(
	photos *PhotoHandler,
	albums *AlbumHandler,
	authH *AuthHandler,
	principal *domain.Principal,
) http.Handler {
	r := chi.NewRouter()
	r.Use(withPrincipal(principal))

	if authH != nil {
		r.Post("/auth/register", Handle(authH.Register))
		r.Post("/auth/login", Handle(authH.Login))
	}
	if albums != nil {
		r.Get("/albums", Handle(albums.ListAlbums))
		r.Post("/albums", Handle(albums.CreateAlbum))
		r.Get("/albums/{albumId}", Handle(albums.ViewAlbum))
		r.Delete("/albums/{albumId}", Handle(albums.DeleteAlbum))
		r.Post("/albums/{albumId}", Handle(albums.UploadPhoto))
	}
	if photos != nil {
		r.Options("/albums/{albumId}/{photoId}", photos.Preflight)
		r.Get("/albums/{albumId}/{photoId}", Handle(photos.ViewPhoto))
		r.Delete("/albums/{albumId}/{photoId}", Handle(photos.DeletePhoto))
		r.Get("/albums/{albumId}/{photoId}/thumbnail", Handle(photos.ViewThumbnail))
		r.Get("/albums/{albumId}/{photoId}/metadata", Handle(photos.ViewMetadata))
		r.Put("/albums/{albumId}/{photoId}/metadata", Handle(photos.UpdateMetadata))
	}
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// assertError checks status and code of a JSON error response.
func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code domain.ErrorCode) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	assert.Equal(t, string(code), body.Code)
	assert.NotEmpty(t, body.Error)
	assert.NotEmpty(t, body.TraceID)
}

func principalFor(id uuid.UUID) *domain.Principal {
	p := domain.NewPrincipal(id)
	return &p
}
