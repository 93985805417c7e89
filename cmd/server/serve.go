package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	httpadapter "sourcescore/internal/adapters/http"
	"sourcescore/internal/metrics"
	"sourcescore/internal/services/reliability"
	"sourcescore/internal/services/scoring"
	"sourcescore/internal/workers/reloader"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP scoring service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func serve(parent context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, err := loadRules(cfg)
	if err != nil {
		return err
	}
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	m := metrics.New()
	db := reliability.New(r, logger)
	reload := &reloader.Reloader{DB: db, Store: st, Observer: m, Logger: logger, Timeout: 30 * time.Second}
	if err := reload.ReloadOnce(ctx); err != nil {
		return err
	}
	logger.Info("reliability snapshot loaded", "domains", db.Snapshot().Len(), "store", cfg.Driver())

	if cfg.ReloadInterval > 0 {
		go reload.Run(ctx, cfg.ReloadInterval)
		logger.Info("snapshot reloads scheduled", "interval", cfg.ReloadInterval)
	}

	scorer := scoring.New(db, r, scoring.WithLogger(logger))
	srv := httpadapter.New(scorer, st, m, logger, Version)
	router := chi.NewRouter()
	router.Mount("/", srv.Routes())

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
