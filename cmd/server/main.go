package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/bookshelf/internal/catalog"
	"github.com/iudanet/bookshelf/internal/server"
	"github.com/iudanet/bookshelf/internal/server/handlers"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/internal/server/storage/memory"
	"github.com/iudanet/bookshelf/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const defaultSessionTTL = time.Hour

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "", "Path to SQLite database file (empty = in-memory storage)")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger, *addr, *dbPath); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string) error {
	// Секрет подписи токенов обязателен, дефолта нет
	secret := os.Getenv("BOOKSHELF_JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("BOOKSHELF_JWT_SECRET environment variable is required")
	}

	jwtConfig := handlers.JWTConfig{
		Secret:     []byte(secret),
		SessionTTL: defaultSessionTTL,
	}

	// Выбор хранилища: SQLite файл или in-memory
	var (
		users    storage.UserStorage
		sessions storage.SessionStorage
		books    storage.BookStorage
	)

	if dbPath != "" {
		store, err := sqlite.New(context.Background(), dbPath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close storage", "error", err)
			}
		}()

		users, sessions, books = store, store, store
		logger.Info("using sqlite storage", "path", dbPath)
	} else {
		seed, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("failed to load seed catalog: %w", err)
		}

		store := memory.New(seed)
		users, sessions, books = store, store, store
		logger.Info("using in-memory storage", "seed_books", len(seed))
	}

	router := server.NewRouter(server.Deps{
		Logger:    logger,
		Users:     users,
		Sessions:  sessions,
		Books:     books,
		JWTConfig: jwtConfig,
		Version:   Version,
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown по SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bookshelf server starting",
			"addr", httpServer.Addr,
			"version", Version,
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server listen error: %w", err)
	case <-stop:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}

func printVersion() {
	fmt.Printf("Bookshelf Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
