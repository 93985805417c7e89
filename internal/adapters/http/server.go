package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sourcescore/internal/metrics"
	"sourcescore/internal/ports"
)

const (
	serviceName    = "sourcescore"
	maxRequestBody = 1 << 20
)

// Server exposes the scoring service over HTTP.
type Server struct {
	scorer  ports.Scorer
	store   ports.Pinger
	metrics *metrics.Metrics
	logger  *slog.Logger
	version string
}

// New wires a Server. store may be nil when no durable store backs the
// database.
func New(scorer ports.Scorer, store ports.Pinger, m *metrics.Metrics, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Server{scorer: scorer, store: store, metrics: m, logger: logger, version: version}
}

// Routes returns the chi router for the service.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.getRoot)
	r.Get("/healthz", s.getHealthz)
	r.Get("/health", s.getHealthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Route("/score", func(r chi.Router) {
		r.Post("/", s.postScore)
		r.Get("/rsp/{domain}", s.getRSP)
		r.Get("/test", s.getTest)
	})
	return r
}

func (s *Server) getRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": serviceName,
		"version": s.version,
		"status":  "healthy",
		"endpoints": map[string]string{
			"score":   "/score",
			"lookup":  "/score/rsp/{domain}",
			"health":  "/healthz",
			"metrics": "/metrics",
		},
	})
}

func (s *Server) getHealthz(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if s.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.store.Ping(ctx); err != nil {
			s.logger.Warn("store ping failed", "error", err)
			resp["status"] = "degraded"
			resp["store"] = "unreachable"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp["store"] = "ok"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "source scoring service available"})
}
