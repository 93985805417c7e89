// Package reliability owns the curated domain→rating database used as the
// base of every score.
package reliability

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"sourcescore/internal/domain"
	"sourcescore/internal/ports"
	"sourcescore/internal/rules"
)

// Database holds the current Snapshot. Readers always observe one complete
// snapshot; Replace and Load swap the whole reference at once.
type Database struct {
	current atomic.Pointer[Snapshot]
	rules   *rules.Rules
	logger  *slog.Logger
}

// New returns a Database seeded with records.
func New(r *rules.Rules, logger *slog.Logger, records ...domain.ReliabilityRecord) *Database {
	if logger == nil {
		logger = slog.Default()
	}
	db := &Database{rules: r, logger: logger}
	db.Replace(records)
	return db
}

// Snapshot returns the snapshot currently in use.
func (db *Database) Snapshot() *Snapshot { return db.current.Load() }

// Lookup resolves name against the current snapshot.
func (db *Database) Lookup(name string) domain.LookupResult {
	return db.current.Load().Lookup(name)
}

// Replace builds a snapshot from records and publishes it.
func (db *Database) Replace(records []domain.ReliabilityRecord) *Snapshot {
	s := NewSnapshot(records, db.rules, db.logger)
	db.current.Store(s)
	return s
}

// Load reads every record from store and publishes a fresh snapshot. On error
// the previous snapshot stays in place.
func (db *Database) Load(ctx context.Context, store ports.ReliabilityStore) (*Snapshot, error) {
	records, err := store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reliability snapshot: %w", err)
	}
	s := db.Replace(records)
	db.logger.Debug("reliability snapshot loaded", "domains", s.Len())
	return s, nil
}
