package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rpggio/upkeep/internal/config"
	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/domain/resident"
	"github.com/rpggio/upkeep/internal/httpapi"
	"github.com/rpggio/upkeep/internal/memory"
	"github.com/rpggio/upkeep/internal/sqlite"
)

func main() {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	var (
		complaintRepo complaint.Repository
		residentRepo  resident.Repository
	)

	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore()
		complaintRepo = store.Complaints()
		residentRepo = store.Residents()
	default:
		if err := ensureDBDir(cfg.Store.Path); err != nil {
			logger.Error("failed to prepare database path", "error", err)
			os.Exit(1)
		}

		db, err := sqlite.New(cfg.Store.Path)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Bootstrap(); err != nil {
			logger.Error("failed to bootstrap schema", "error", err)
			os.Exit(1)
		}

		complaintRepo = sqlite.NewComplaintRepository(db)
		residentRepo = sqlite.NewResidentRepository(db)
	}

	residentSvc := resident.NewService(residentRepo, logger)
	complaintSvc := complaint.NewService(complaintRepo, residentSvc, logger)

	if cfg.Seed.Path != "" {
		if err := seedResidents(cfg.Seed.Path, residentSvc, logger); err != nil {
			logger.Error("failed to seed residents", "error", err)
			os.Exit(1)
		}
	}

	handler := httpapi.NewHandler(complaintSvc, residentSvc, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler.Routes(),
	}

	go func() {
		logger.Info("server listening", "addr", addr, "store", cfg.Store.Driver)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

// seedResidents imports residents from a YAML file. Entries already present
// in the store are skipped so the seed can run on every start.
func seedResidents(path string, svc *resident.Service, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var residents []resident.Resident
	if err := yaml.Unmarshal(data, &residents); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	ctx := context.Background()
	seeded := 0
	for i := range residents {
		err := svc.Create(ctx, &residents[i])
		if errors.Is(err, resident.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed resident %d: %w", residents[i].ID, err)
		}
		seeded++
	}

	logger.Info("residents seeded", "path", path, "new", seeded, "total", len(residents))
	return nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
