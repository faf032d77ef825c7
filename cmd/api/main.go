package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/art2art/portfolio-media-go/internal/config"
	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/handler"
	"github.com/art2art/portfolio-media-go/internal/handler/api"
	"github.com/art2art/portfolio-media-go/internal/logger"
	"github.com/art2art/portfolio-media-go/internal/port"
	"github.com/art2art/portfolio-media-go/internal/repository/mariadb"
	"github.com/art2art/portfolio-media-go/internal/storage"
	mediaSvc "github.com/art2art/portfolio-media-go/internal/usecase/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	strg := initStorage(ctx, cfg)

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	workRepo := mariadb.NewWorkRepository(database.DB)

	gate := mediaSvc.NewOwnershipGate(workRepo)
	signer := mediaSvc.NewAccessURLIssuer(strg, cfg.PresignedURLTTL)

	uploaderSvc := mediaSvc.NewMediaUploader(mediaRepo, strg, gate, signer, db.NewUUID, mediaSvc.Limits{
		MaxFileSizeBytes: cfg.MaxFileSizeBytes,
		MaxFilesCount:    cfg.MaxFilesCount,
	})
	listerSvc := mediaSvc.NewMediaLister(mediaRepo, gate, signer)
	deleterSvc := mediaSvc.NewMediaDeleter(mediaRepo, strg, gate)

	r := initRouter(ctx)

	// public browsing, no auth required
	r.With(api.WithArtistID(), api.WithWorkID()).
		Get("/artists/{artistId}/works/{workId}/media", api.ListWorkMediaHandler(listerSvc))

	// owner routes, acting artist resolved from the bearer token
	r.Route("/artists/me/works/{workId}/media", func(r chi.Router) {
		r.Use(api.WithArtistAuth(cfg.JWTSecret))
		r.Use(api.WithWorkID())

		r.Get("/", api.ListMyWorkMediaHandler(listerSvc))
		r.Post("/", api.UploadMediaHandler(uploaderSvc))
		r.With(api.WithMediaID()).
			Delete("/{mediaId}", api.DeleteMediaHandler(deleterSvc))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.BucketName,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	if err := strg.InitBucket(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.BucketName, err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
