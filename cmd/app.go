package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/storage/memory"
	"github.com/Zachkp/portfolio/internal/storage/redis"
	"github.com/Zachkp/portfolio/internal/storage/sqlite"
)

// app is the state every command starts from.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	kv     storage.KV
	// db is set only for the sqlite driver; visit tracking needs it.
	db *sql.DB
}

func bootstrap(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.Log, logOut)
	slog.SetDefault(logger)

	kv, db, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Info("storage opened", "driver", cfg.Storage.Driver)

	return &app{cfg: cfg, logger: logger, kv: kv, db: db}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Error("storage close error", "error", err)
	}
}

func (a *app) contentStore(ctx context.Context) *content.Store {
	return content.New(ctx, a.kv, a.logger)
}

func (a *app) gate() *session.Gate {
	return session.NewGate(a.kv, a.cfg.Admin.DefaultPassword, a.logger)
}

// openStorage opens the driver named in cfg.
func openStorage(ctx context.Context, cfg config.StorageConfig) (storage.KV, *sql.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.DB(), nil
	case config.DriverRedis:
		s, err := redis.Open(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case config.DriverMemory:
		return memory.New(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func setupLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
