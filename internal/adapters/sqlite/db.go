// Package sqlite is a single-file reliability store for local runs and
// tests. It mirrors the Postgres adapter's schema.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"sourcescore/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies
// migrations.
func Open(ctx context.Context, path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	db := &DB{db: sqlDB}
	if err := db.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	// Single writer; sqlite serializes writes anyway.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func (db *DB) migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db.db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (db *DB) Ping(ctx context.Context) error { return db.db.PingContext(ctx) }

func (db *DB) Close() error { return db.db.Close() }

// Snapshot returns every curated record ordered by domain.
func (db *DB) Snapshot(ctx context.Context) ([]domain.ReliabilityRecord, error) {
	rows, err := db.db.QueryContext(ctx, `SELECT domain, label, notes FROM rsp_entries ORDER BY domain`)
	if err != nil {
		return nil, fmt.Errorf("query rsp entries: %w", err)
	}
	defer rows.Close()

	var out []domain.ReliabilityRecord
	for rows.Next() {
		var r domain.ReliabilityRecord
		if err := rows.Scan(&r.Domain, &r.Label, &r.Notes); err != nil {
			return nil, fmt.Errorf("scan rsp entry: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Merge upserts records in one transaction.
func (db *DB) Merge(ctx context.Context, records []domain.ReliabilityRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rsp_entries (domain, label, notes, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (domain) DO UPDATE
		SET label = excluded.label, notes = excluded.notes, updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Domain, r.Label, r.Notes); err != nil {
			return 0, fmt.Errorf("upsert rsp entry %s: %w", r.Domain, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit merge: %w", err)
	}
	return len(records), nil
}
