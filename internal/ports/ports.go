package ports

import "sourcescore/internal/domain"

// Scorer scores sources and answers diagnostic lookups.
type Scorer interface {
	Score(req domain.ScoreRequest) (domain.ScoreResult, error)
	Lookup(domainName string) domain.LookupResult
}
