package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	pg "sourcescore/internal/adapters/postgres"
	"sourcescore/internal/adapters/sqlite"
	"sourcescore/internal/config"
	"sourcescore/internal/ports"
	"sourcescore/internal/rules"
)

// store is what every command needs from a backing store.
type store interface {
	ports.ReliabilityStore
	ports.Pinger
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Production() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func loadRules(cfg config.Config) (*rules.Rules, error) {
	if cfg.RulesFile == "" {
		return rules.Default(), nil
	}
	return rules.LoadFile(cfg.RulesFile)
}

// openStore connects the configured store. Postgres schemas are migrated by
// the migrate command; sqlite migrates on open.
func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	switch cfg.Driver() {
	case config.DriverPostgres:
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		return db, db.Close, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver())
}

func stderrLogger(cfg config.Config) *slog.Logger {
	return newLogger(cfg, os.Stderr)
}
