// Package main is the entry point for the forum frontend server. It loads
// configuration, connects to Valkey, wires the backend REST client and
// handler groups, and starts the HTTP server with graceful shutdown support.
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

	"forumfront/internal/api"
	"forumfront/internal/auth"
	"forumfront/internal/cache"
	"forumfront/internal/config"
	"forumfront/internal/handlers"
	"forumfront/internal/i18n"
	"forumfront/internal/render"
	"forumfront/internal/router"
	"forumfront/internal/session"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.APIBaseURL,
	)

	// Connect to Valkey (sessions + backend response cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	queryCache := cache.NewQueryCache(valkeyClient, cache.DefaultQueryTTL)

	// Typed client for the forum REST backend.
	apiClient := api.New(cfg.APIBaseURL)
	manager := auth.NewManager(apiClient, sessionStore)

	// Load translations and the template renderer.
	bundle, err := i18n.New(cfg.DefaultLang)
	if err != nil {
		slog.Error("failed to load translations", "error", err)
		os.Exit(1)
	}
	renderer, err := render.New(bundle)
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(renderer, manager, bundle)
	forumHandlers := handlers.NewForum(renderer, apiClient, queryCache, bundle)
	adminHandlers := handlers.NewAdmin(renderer, apiClient, queryCache, bundle)

	// Set up the Chi router with all middleware and routes.
	r := router.New(manager, authHandlers, forumHandlers, adminHandlers, secureCookies)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// page renders that wait on the backend.
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
