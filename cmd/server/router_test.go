package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/photoalbum-api/internal/config"
	"github.com/phrazzld/photoalbum-api/internal/mocks"
	"github.com/phrazzld/photoalbum-api/internal/task"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "error",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			ShutdownTimeoutSeconds: 5,
		},
		Database: config.DatabaseConfig{URL: "postgres://localhost:5432/photoalbum"},
		Auth: config.AuthConfig{
			JWTSecret:            "router-test-secret-that-is-long-enough",
			TokenLifetimeMinutes: 60,
			BCryptCost:           4,
		},
		Storage: config.StorageConfig{Bucket: "photos", Region: "us-east-1"},
		Images:  config.ImagesConfig{ThumbnailWidth: 240, MaxUploadBytes: 1 << 20},
	}
}

func newTestApplication(t *testing.T) (*application, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplicationWithBlobStore(testConfig(), logger, db, mocks.NewMockBlobStore())
	require.NoError(t, err)
	return app, mock
}

func TestRouter_Health(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_PhotoPreflightNeedsNoToken(t *testing.T) {
	app, mock := newTestApplication(t)
	router := app.setupRouter()

	photoPath := "/albums/" + uuid.NewString() + "/" + uuid.NewString()
	tests := []struct {
		path   string
		method string
	}{
		{photoPath, http.MethodDelete},
		{photoPath + "/thumbnail", http.MethodGet},
		{photoPath + "/metadata", http.MethodGet},
		{photoPath + "/metadata", http.MethodPut},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tt.path, nil)
			req.Header.Set("Origin", "https://example.com")
			req.Header.Set("Access-Control-Request-Method", tt.method)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET,PUT,DELETE", rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_AlbumRoutesRequireToken(t *testing.T) {
	app, mock := newTestApplication(t)
	router := app.setupRouter()

	paths := []string{
		"/albums",
		"/albums/" + uuid.NewString(),
		"/albums/" + uuid.NewString() + "/" + uuid.NewString(),
		"/albums/" + uuid.NewString() + "/" + uuid.NewString() + "/metadata",
		"/albums/" + uuid.NewString() + "/" + uuid.NewString() + "/thumbnail",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"S002"`)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_GalleryWithValidToken(t *testing.T) {
	app, mock := newTestApplication(t)
	router := app.setupRouter()

	userID := uuid.New()
	token, _, err := app.jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, owner_id, name, created_at").
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "created_at"}))

	req := httptest.NewRequest(http.MethodGet, "/albums", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_AlbumPreflightHandledByCORS(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/albums", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_ConfiguredOrigins(t *testing.T) {
	handler := corsMiddleware(config.CORSConfig{AllowedOrigins: []string{"https://photos.example.com"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	allowed := httptest.NewRequest(http.MethodGet, "/albums", nil)
	allowed.Header.Set("Origin", "https://photos.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, allowed)
	assert.Equal(t, "https://photos.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/albums", nil)
	denied.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, denied)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-migrate", "status"})
	require.NoError(t, err)
	assert.Equal(t, "status", f.migrate)

	f, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, f.migrate)

	_, err = parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

func TestNewHTTPServer_UsesConfiguredTimeouts(t *testing.T) {
	app, _ := newTestApplication(t)
	server := app.newHTTPServer(http.NotFoundHandler())

	assert.Equal(t, ":8080", server.Addr)
	assert.Equal(t, "5s", server.ReadTimeout.String())
	assert.Equal(t, "5s", server.WriteTimeout.String())
}

func TestStopWorkersDrainsQueuedCleanup(t *testing.T) {
	app, _ := newTestApplication(t)
	blobs, ok := app.blobStore.(*mocks.MockBlobStore)
	require.True(t, ok)
	blobs.Objects["photos/orphan.jpg"] = []byte("content")

	require.NoError(t, app.taskQueue.Enqueue(task.NewBlobCleanupTask(blobs, []string{"photos/orphan.jpg"})))
	app.workerPool.Start()
	app.stopWorkers()

	assert.Equal(t, []string{"photos/orphan.jpg"}, blobs.Deleted())
}
