package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/photoalbum-api/internal/api"
	apiMiddleware "github.com/phrazzld/photoalbum-api/internal/api/middleware"
	"github.com/phrazzld/photoalbum-api/internal/config"
	"github.com/phrazzld/photoalbum-api/internal/converter"
)

// corsMaxAgeSeconds is how long browsers may cache album preflight results.
const corsMaxAgeSeconds = 300

// setupRouter creates the router with all routes and middleware.
//
// Album and gallery routes get CORS handling from go-chi/cors. The photo
// resource answers its own OPTIONS preflight, which needs no principal.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	albumHandler := api.NewAlbumHandler(
		app.albumService,
		app.albumService,
		app.photoService,
		app.authorization,
		app.links,
		app.config.Images.MaxUploadBytes,
		app.logger,
	)
	photoHandler := api.NewPhotoHandler(
		app.photoService,
		app.photoService,
		app.authorization,
		converter.NewPhotoMetadataReprConverter(app.links),
		app.logger,
	)

	r.Post("/auth/register", api.Handle(authHandler.Register))
	r.Post("/auth/login", api.Handle(authHandler.Login))

	r.Route("/albums", func(r chi.Router) {
		r.Options("/{albumId}/{photoId}", photoHandler.Preflight)
		r.Options("/{albumId}/{photoId}/thumbnail", photoHandler.Preflight)
		r.Options("/{albumId}/{photoId}/metadata", photoHandler.Preflight)

		// Album and gallery resources
		r.Group(func(r chi.Router) {
			r.Use(corsMiddleware(app.config.CORS))
			r.Options("/", noContent)
			r.Options("/{albumId}", noContent)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/", api.Handle(albumHandler.ListAlbums))
				r.Post("/", api.Handle(albumHandler.CreateAlbum))
				r.Get("/{albumId}", api.Handle(albumHandler.ViewAlbum))
				r.Delete("/{albumId}", api.Handle(albumHandler.DeleteAlbum))
				r.Post("/{albumId}", api.Handle(albumHandler.UploadPhoto))
			})
		})

		// Photo resource
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/{albumId}/{photoId}", api.Handle(photoHandler.ViewPhoto))
			r.Delete("/{albumId}/{photoId}", api.Handle(photoHandler.DeletePhoto))
			r.Get("/{albumId}/{photoId}/thumbnail", api.Handle(photoHandler.ViewThumbnail))
			r.Get("/{albumId}/{photoId}/metadata", api.Handle(photoHandler.ViewMetadata))
			r.Put("/{albumId}/{photoId}/metadata", api.Handle(photoHandler.UpdateMetadata))
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// corsMiddleware builds the CORS handler of the album routes. Without
// configured origins any origin is allowed.
func corsMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders: []string{"Location", apiMiddleware.TraceIDHeader},
		MaxAge:         corsMaxAgeSeconds,
	})
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
