package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/storefront/internal/config"
	"github.com/msomdec/storefront/internal/credential"
	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/handler"
	"github.com/msomdec/storefront/internal/repository/postgres"
	"github.com/msomdec/storefront/internal/repository/sqlite"
	"github.com/msomdec/storefront/internal/service"
	"github.com/msomdec/storefront/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	db, err := openDatabase(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied", "driver", cfg.DatabaseDriver)

	hasher, err := credential.NewHasher(cfg.PasswordHasher, cfg.BcryptCost)
	if err != nil {
		slog.Error("failed to configure password hasher", "error", err)
		os.Exit(1)
	}
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpires)

	authService := service.NewAuthService(db.Users(), hasher, tokens)
	userService := service.NewUserService(db.Users(), db.Stores(), hasher)
	storeService := service.NewStoreService(db.Stores(), db.Users())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, userService, storeService)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.Chain(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "hasher", hasher.Algorithm())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openDatabase(ctx context.Context, cfg config.Config) (domain.Database, error) {
	if cfg.DatabaseDriver == config.DriverPostgres {
		return postgres.New(ctx, cfg.DatabaseDSN)
	}
	return sqlite.New(cfg.DatabasePath)
}
