package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/photoalbum-api/internal/config"
	"github.com/phrazzld/photoalbum-api/internal/events"
	"github.com/phrazzld/photoalbum-api/internal/link"
	"github.com/phrazzld/photoalbum-api/internal/platform/postgres"
	s3blob "github.com/phrazzld/photoalbum-api/internal/platform/s3"
	"github.com/phrazzld/photoalbum-api/internal/service"
	"github.com/phrazzld/photoalbum-api/internal/service/auth"
	"github.com/phrazzld/photoalbum-api/internal/store"
	"github.com/phrazzld/photoalbum-api/internal/task"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore  store.UserStore
	albumStore store.AlbumStore
	photoStore store.PhotoStore
	blobStore  store.BlobStore

	// Services
	jwtService    auth.JWTService
	authorization auth.Authorization
	userService   service.UserService
	albumService  *service.AlbumServiceImpl
	photoService  *service.PhotoServiceImpl

	// Background image cleanup
	taskQueue  *task.TaskQueue
	workerPool *task.WorkerPool

	links *link.Scheme
}

// newApplication wires stores, services and auth around an open database.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	s3Client, err := s3blob.NewClient(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	return newApplicationWithBlobStore(cfg, logger, db, s3blob.NewBlobStore(s3Client, cfg.Storage.Bucket, logger))
}

// newApplicationWithBlobStore wires the application around the given blob store.
func newApplicationWithBlobStore(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	blobStore store.BlobStore,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		blobStore: blobStore,
		links:     link.NewScheme(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.albumStore = postgres.NewPostgresAlbumStore(db, logger)
	app.photoStore = postgres.NewPostgresPhotoStore(db, logger)

	hasher := auth.NewBcrypt(cfg.Auth.BCryptCost)
	app.authorization = auth.NewOwnershipAuthorization()
	app.userService = service.NewUserService(app.userStore, hasher, hasher, logger)
	app.albumService = service.NewAlbumService(app.albumStore, app.photoStore, app.blobStore, db, logger)
	app.photoService = service.NewPhotoService(app.photoStore, app.blobStore, nil,
		service.PhotoServiceOptions{
			ThumbnailWidth: cfg.Images.ThumbnailWidth,
			MaxUploadBytes: cfg.Images.MaxUploadBytes,
			MaxPixels:      cfg.Images.MaxPixels,
		}, logger)

	app.taskQueue = task.NewTaskQueue(cfg.Tasks.QueueSize, logger)
	app.workerPool = task.NewWorkerPool(app.taskQueue,
		task.WorkerPoolConfig{WorkerCount: cfg.Tasks.WorkerCount}, logger)
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(task.NewBlobCleanupEventHandler(app.taskQueue, app.blobStore, logger))
	app.albumService.SetEventEmitter(emitter)
	app.photoService.SetEventEmitter(emitter)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	app.workerPool.Start()
	defer app.stopWorkers()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// stopWorkers closes the task queue and lets the workers finish what is
// queued, within the shutdown timeout.
func (app *application) stopWorkers() {
	app.taskQueue.Close()

	timeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.workerPool.Stop(ctx); err != nil {
		app.logger.Warn("background tasks abandoned at shutdown", slog.String("error", err.Error()))
	}
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
