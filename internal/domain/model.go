package domain

import "errors"

// Core domain models used by the scoring engine. Wire shapes (CSL-JSON, HTTP
// payloads) live in their adapters; keep these decoupled from them.

// ReliabilityRecord is one curated entry of the reliability database.
type ReliabilityRecord struct {
	Domain string
	Label  string
	Notes  string
}

// ScoreRequest carries everything a caller may know about a source. At least
// one of Domain, URL or Metadata.URL must yield a host.
type ScoreRequest struct {
	Domain   string
	URL      string
	Metadata *CitationMetadata
	Context  string
}

// ScoreResult is the outcome of scoring a single source.
type ScoreResult struct {
	Quality         int       `json:"quality"`
	Label           string    `json:"label"`
	Notes           string    `json:"notes,omitempty"`
	Factors         FactorSet `json:"factors"`
	Recommendations []string  `json:"recommendations"`
	// Match is how the domain resolved against the database.
	Match MatchKind `json:"match"`
}

// MatchKind records how a lookup resolved against the database.
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchAncestor MatchKind = "ancestor"
	MatchNone     MatchKind = "none"
)

// LookupResult is a database entry resolved for a domain, without running the
// analyzer pipeline.
type LookupResult struct {
	Domain    string      `json:"domain"`
	Label     string      `json:"label"`
	Rating    RatingLabel `json:"rating"`
	Notes     string      `json:"notes,omitempty"`
	BaseScore int         `json:"base_score"`
	Match     MatchKind   `json:"match"`
	// MatchedDomain is the database key that answered the lookup; empty when
	// Match is MatchNone.
	MatchedDomain string `json:"matched_domain,omitempty"`
}

// FactorSet holds the signed deltas each analyzer contributes to the quality
// score. All fields default to zero.
type FactorSet struct {
	EditorialControl int `json:"editorial_control" yaml:"editorial_control,omitempty"`
	Independence     int `json:"independence" yaml:"independence,omitempty"`
	FactChecking     int `json:"fact_checking" yaml:"fact_checking,omitempty"`
	Expertise        int `json:"expertise" yaml:"expertise,omitempty"`
	Transparency     int `json:"transparency" yaml:"transparency,omitempty"`
	Recency          int `json:"recency" yaml:"recency,omitempty"`
	SourceTypeBonus  int `json:"source_type_bonus" yaml:"source_type_bonus,omitempty"`
	ContextFit       int `json:"context_fit" yaml:"context_fit,omitempty"`
}

// Sum adds all eight factors.
func (f FactorSet) Sum() int {
	return f.EditorialControl + f.Independence + f.FactChecking + f.Expertise +
		f.Transparency + f.Recency + f.SourceTypeBonus + f.ContextFit
}

// Add accumulates every field of d into f.
func (f *FactorSet) Add(d FactorSet) {
	f.EditorialControl += d.EditorialControl
	f.Independence += d.Independence
	f.FactChecking += d.FactChecking
	f.Expertise += d.Expertise
	f.Transparency += d.Transparency
	f.Recency += d.Recency
	f.SourceTypeBonus += d.SourceTypeBonus
	f.ContextFit += d.ContextFit
}

// ErrMissingDomain is returned when no domain can be derived from a request.
var ErrMissingDomain = errors.New("no domain provided or extractable")
