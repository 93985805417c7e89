package reloader

import (
	"context"
	"log/slog"
	"time"

	"sourcescore/internal/ports"
	"sourcescore/internal/services/reliability"
)

// Observer is told about every reload attempt.
type Observer interface {
	ObserveReload(size int, unixTime int64, err error)
}

// Reloader refreshes the reliability database from its store.
type Reloader struct {
	DB       *reliability.Database
	Store    ports.ReliabilityStore
	Observer Observer
	Logger   *slog.Logger
	// Timeout bounds a single store read; zero means no bound.
	Timeout time.Duration
}

// ReloadOnce reads the store and swaps in a fresh snapshot. On failure the
// previous snapshot keeps serving.
func (r *Reloader) ReloadOnce(ctx context.Context) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	snap, err := r.DB.Load(ctx, r.Store)
	size := 0
	if snap != nil {
		size = snap.Len()
	}
	if r.Observer != nil {
		r.Observer.ObserveReload(size, time.Now().Unix(), err)
	}
	return err
}

// Run reloads every interval until ctx is done. It returns immediately when
// interval is not positive.
func (r *Reloader) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.ReloadOnce(ctx); err != nil {
				logger.Error("snapshot reload failed", "error", err)
				continue
			}
			logger.Debug("snapshot reloaded", "domains", r.DB.Snapshot().Len())
		}
	}
}
