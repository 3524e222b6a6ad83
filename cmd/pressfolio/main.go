// Package main is the entry point for the Pressfolio content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pressfolio/internal/cache"
	"pressfolio/internal/config"
	"pressfolio/internal/database"
	"pressfolio/internal/handlers"
	"pressfolio/internal/lifecycle"
	"pressfolio/internal/middleware"
	"pressfolio/internal/router"
	"pressfolio/internal/seo"
	"pressfolio/internal/storage"
	"pressfolio/internal/store"
	"pressfolio/internal/token"
)

func main() {
	// Structured logger outputs text; level is debug so development
	// cache hits and misses are visible.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey. The API works without it, just uncached.
	var respCache *cache.ResponseCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, response caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		respCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	}

	// Connect to S3-compatible object storage (optional; the API works
	// without it, content just has no image URLs).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media URLs disabled")
	}

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	postStore := store.NewBlogPostStore(db)
	courseStore := store.NewCourseStore(db)
	newsStore := store.NewNewsItemStore(db)
	pageStore := store.NewPageStore(db)
	projectStore := store.NewProjectStore(db)
	taxonomyStore := store.NewTaxonomyStore(db)
	dashboardStore := store.NewDashboardStore(db)

	// The lifecycle manager drives every content save.
	var lcOpts []lifecycle.Option
	if cfg.AllowRevertToDraft {
		lcOpts = append(lcOpts, lifecycle.WithRevertToDraft())
	}
	lifecycleManager := lifecycle.New(lcOpts...)

	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	site := seo.SiteInfo{Name: cfg.SiteName, BaseURL: cfg.SiteBaseURL}

	// Rate limit login attempts per client IP.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer loginLimiter.Stop()

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(postStore, courseStore, newsStore, pageStore, projectStore,
		lifecycleManager, storageClient, respCache, site)
	authHandlers := handlers.NewAuth(userStore, tokens)
	publicHandlers := handlers.NewPublic(postStore, courseStore, newsStore, pageStore, projectStore,
		userStore, taxonomyStore, storageClient, respCache, site)
	dashboardHandlers := handlers.NewDashboard(dashboardStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(tokens, loginLimiter, adminHandlers, authHandlers, publicHandlers, dashboardHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
