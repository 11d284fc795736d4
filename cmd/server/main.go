package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rizaldy/keuanganku/internal/auth"
	"github.com/rizaldy/keuanganku/internal/config"
	"github.com/rizaldy/keuanganku/internal/server"
	"github.com/rizaldy/keuanganku/internal/service"
	"github.com/rizaldy/keuanganku/internal/storage/sqlite"
	"github.com/rizaldy/keuanganku/pkg/logging"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	authenticator := auth.NewPasswordAuthenticator(store)
	if err := authenticator.Seed(context.Background(), cfg.SeedUsername, cfg.SeedPassword); err != nil {
		slog.Error("Failed to seed default user", "error", err)
		os.Exit(1)
	}
	slog.Info("Seed user ensured", "username", cfg.SeedUsername)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authenticator, jwtManager, slog.Default())
	ledgerService := service.NewLedgerService(store, slog.Default())

	srv := &http.Server{
		Addr: fmt.Sprintf(":%s", cfg.Port),
		// h2c allows HTTP/2 without TLS for local and reverse-proxied setups
		Handler:        h2c.NewHandler(server.New(authService, ledgerService, jwtManager).Handler(), &http2.Server{}),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	slog.Info("Server starting", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.Info("Server stopped gracefully")
}
