// Package scoring rates how reliable a cited source is. A curated database
// gives the base score; domain, metadata and context analyzers adjust it.
package scoring

import (
	"log/slog"
	"time"

	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
	"sourcescore/internal/services/reliability"
)

// Database resolves domains to curated ratings.
type Database interface {
	Lookup(name string) domain.LookupResult
}

// Service is safe for concurrent use as long as the Database is.
type Service struct {
	db        Database
	rules     *rules.Rules
	analyzers []Analyzer
	now       func() time.Time
	logger    *slog.Logger
}

type Option func(*Service)

// WithClock overrides the time source used for recency checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func New(db Database, r *rules.Rules, opts ...Option) *Service {
	s := &Service{
		db:     db,
		rules:  r,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.analyzers = []Analyzer{
		DomainHeuristics{Rules: r.Domains},
		MetadataAnalyzer{TypeBonus: r.TypeBonus, Rules: r.Metadata, Recency: r.Recency},
		ContextFit{Rules: r.Context},
	}
	return s
}

// Score rates a single source. It fails only when no domain can be derived
// from the request.
func (s *Service) Score(req domain.ScoreRequest) (domain.ScoreResult, error) {
	name, err := reliability.ResolveDomain(req)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	info := s.db.Lookup(name)

	in := Input{
		Domain:   info.Domain,
		Metadata: req.Metadata,
		Context:  req.Context,
		Year:     s.now().Year(),
	}
	var factors domain.FactorSet
	for _, a := range s.analyzers {
		a.Analyze(in, &factors)
	}

	quality := Aggregate(s.rules.Aggregate, info.BaseScore, factors)
	s.logger.Debug("source scored",
		"domain", info.Domain,
		"match", info.Match,
		"label", info.Label,
		"base_score", info.BaseScore,
		"quality", quality,
	)

	return domain.ScoreResult{
		Quality:         quality,
		Label:           info.Label,
		Notes:           info.Notes,
		Factors:         factors,
		Recommendations: Recommend(info.Rating, quality, factors),
		Match:           info.Match,
	}, nil
}

// Lookup returns the database entry for a domain without running analyzers.
func (s *Service) Lookup(name string) domain.LookupResult {
	return s.db.Lookup(name)
}
