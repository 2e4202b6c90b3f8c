// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/aditpras/folio/internal/api"
	"github.com/aditpras/folio/internal/cdn"
	"github.com/aditpras/folio/internal/content"
	"github.com/aditpras/folio/internal/media"
	"github.com/aditpras/folio/internal/sse"
	"github.com/aditpras/folio/internal/store"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("uploads_dir", cfg.Uploads.Dir),
		slog.Bool("cdn_enabled", cfg.CDN.Enabled()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Initialize the document store.
	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	// Initialize the uploads directory and reconcile its index.
	uploads, err := media.NewStore(cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("init uploads: %w", err)
	}
	if err := media.Sync(db, uploads, logger); err != nil {
		logger.Warn("initial media sync failed", slog.String("error", err.Error()))
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Optional CDN client.
	var cdnClient *cdn.Client
	if cfg.CDN.Enabled() {
		cdnClient = cdn.New(cdn.Config{
			CloudName:    cfg.CDN.CloudName,
			UploadPreset: cfg.CDN.UploadPreset,
			APIBase:      cfg.CDN.APIBaseURL,
			DeliveryBase: cfg.CDN.DeliveryBaseURL,
		}, nil)
	}

	// Build the content service and API router.
	svc := content.NewService(db, broker)
	uploadHandler := api.NewUploadHandler(uploads, db, cdnClient, cfg.CDN.Folder, cfg.Uploads.MaxBytes)
	handler := api.NewHandler(svc, uploadHandler, api.ContactSettings{
		OwnerPhone:  cfg.Contact.OwnerPhone,
		CountryCode: cfg.Contact.CountryCode,
	})
	apiRouter := api.NewRouter(handler, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	// Stored uploads are public.
	r.Get("/uploads/{filename}", uploadHandler.ServeFile)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start the uploads watcher with SSE callback.
	g.Go(func() error {
		return media.Watch(gCtx, db, uploads, logger, func(kind, name string) {
			broker.PublishRecordEvent("assets", kind, name)
		})
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
