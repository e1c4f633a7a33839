package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/creatorkit/server/internal/auth"
	"codeberg.org/creatorkit/server/internal/config"
	"codeberg.org/creatorkit/server/internal/logger"
)

// @title CreatorKit API
// @version 1.0
// @description Template-driven content generation toolkit for video creators
// @description
// @description Features:
// @description - Deterministic template-based generators (titles, hooks, outlines, thumbnails, SEO, checklists)
// @description - Per-user daily quota with free and pro plans
// @description - OAuth authentication (Google, GitHub)
// @description - Saved generation history

// @contact.name API Support
// @contact.url https://codeberg.org/creatorkit/server

// @license.name GPL-3.0
// @license.url https://www.gnu.org/licenses/gpl-3.0.html

// @host creatorkit.dev

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

func main() {
	logger.Info("starting creatorkit server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// initialize OAuth providers
	if err := auth.InitializeProviders(); err != nil {
		logger.Fatal("failed to initialize OAuth providers", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
