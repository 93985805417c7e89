package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sourcescore/internal/domain"
)

// Snapshot returns every curated record.
func (db *DB) Snapshot(ctx context.Context) ([]domain.ReliabilityRecord, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT domain, label, COALESCE(notes, '')
		FROM rsp_entries
		ORDER BY domain
	`)
	if err != nil {
		return nil, fmt.Errorf("query rsp entries: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ReliabilityRecord, error) {
		var r domain.ReliabilityRecord
		err := row.Scan(&r.Domain, &r.Label, &r.Notes)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan rsp entries: %w", err)
	}
	return records, nil
}

// Merge upserts records in one transaction. Callers are expected to have
// normalized domains already.
func (db *DB) Merge(ctx context.Context, records []domain.ReliabilityRecord) (merged int, err error) {
	if len(records) == 0 {
		return 0, nil
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`
			INSERT INTO rsp_entries (domain, label, notes, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (domain) DO UPDATE
			SET label = EXCLUDED.label, notes = EXCLUDED.notes, updated_at = now()
		`, r.Domain, r.Label, r.Notes)
	}
	br := tx.SendBatch(ctx, batch)
	for range records {
		if _, err = br.Exec(); err != nil {
			_ = br.Close()
			return 0, fmt.Errorf("upsert rsp entry: %w", err)
		}
	}
	if err = br.Close(); err != nil {
		return 0, err
	}
	return len(records), nil
}
