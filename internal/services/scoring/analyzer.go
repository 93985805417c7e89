package scoring

import "sourcescore/internal/domain"

// Input is what every analyzer sees for one request.
type Input struct {
	// Domain is the normalized domain being scored.
	Domain   string
	Metadata *domain.CitationMetadata
	Context  string
	// Year is the current calendar year, used for recency checks.
	Year int
}

// metadata returns the request metadata or an empty value.
func (in Input) metadata() domain.CitationMetadata {
	if in.Metadata == nil {
		return domain.CitationMetadata{}
	}
	return *in.Metadata
}

// Analyzer contributes deltas to a shared FactorSet. Analyzers are
// independent of one another and must not read factors they did not write.
type Analyzer interface {
	Analyze(in Input, f *domain.FactorSet)
}
