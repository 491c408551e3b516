package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wedding-api/core/cache"
	"wedding-api/core/config"
	"wedding-api/core/database"
	"wedding-api/core/gcp"
	"wedding-api/core/health"
	"wedding-api/core/logger"
	"wedding-api/core/middleware"
	"wedding-api/core/queue"
	"wedding-api/modules/auth"
	"wedding-api/modules/media"
	"wedding-api/modules/media/storage"
	"wedding-api/modules/rsvp"
	"wedding-api/modules/rsvp/mirror"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Run boots every shared resource once (document store, redis, queue,
// Google clients, storage backend), wires the modules, and serves until a
// shutdown signal arrives.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx := context.Background()

	db, err := database.InitDB(cfg.Mongo)
	if err != nil {
		return err
	}

	c := cache.NewCache(cfg.Redis)
	q := queue.New(cfg.Redis)

	googleOpts, err := gcp.ClientOptions(ctx, cfg.Google)
	if err != nil {
		return err
	}

	sheetsService, err := sheets.NewService(ctx, googleOpts...)
	if err != nil {
		return fmt.Errorf("create sheets client: %w", err)
	}
	sheetMirror := mirror.NewSheetsMirror(sheetsService, cfg.Google.SpreadsheetID)

	backend, err := newStorageBackend(ctx, cfg, googleOpts)
	if err != nil {
		return err
	}
	logger.Info("Storage backend initialized", "driver", backend.Name(), "bucket", cfg.Storage.Bucket)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	mw := middleware.NewMiddleware(c)

	api := e.Group("/api")
	api.GET("/healthz", health.Handler(db, c))

	auth.Init(api, cfg.Families, c, mw)
	rsvp.Init(api, db, q, sheetMirror, mw)
	media.Init(api, backend)

	// Handlers are registered by the module inits above; start the worker
	// only after that.
	if err := q.Start(); err != nil {
		return fmt.Errorf("start queue worker: %w", err)
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server:Start:Error:", err)
		}
	}()
	logger.Info("Server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	q.Shutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server:Shutdown:Error:", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("Server:DatabaseClose:Error:", err)
	}
	if err := c.Close(); err != nil {
		logger.Error("Server:CacheClose:Error:", err)
	}

	return nil
}

func newStorageBackend(ctx context.Context, cfg *config.Config, googleOpts []option.ClientOption) (storage.Backend, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return storage.NewS3Backend(ctx, cfg.Storage)
	default:
		return storage.NewGCSBackend(ctx, cfg.Storage.Bucket, googleOpts...)
	}
}
