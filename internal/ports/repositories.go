package ports

import (
	"context"

	"sourcescore/internal/domain"
)

// ReliabilityStore is the durable home of the curated reliability database.
// Scoring only ever consumes Snapshot; Merge is the administrative path.
type ReliabilityStore interface {
	Snapshot(ctx context.Context) ([]domain.ReliabilityRecord, error)
	Merge(ctx context.Context, records []domain.ReliabilityRecord) (merged int, err error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
