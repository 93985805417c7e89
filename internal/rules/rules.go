// Package rules holds the tunable tables that drive source scoring: label
// base scores, domain heuristics, citation-type bonuses, recency tiers,
// context keywords and the aggregation curve. Defaults reproduce the curated
// behaviour; a YAML file may override any table.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sourcescore/internal/domain"
)

type Rules struct {
	Labels    LabelRules                  `yaml:"labels"`
	Domains   []DomainRule                `yaml:"domains"`
	TypeBonus map[domain.CitationType]int `yaml:"type_bonus"`
	Metadata  MetadataRules               `yaml:"metadata"`
	Recency   []RecencyTier               `yaml:"recency"`
	Context   ContextRules                `yaml:"context"`
	Aggregate AggregateRules              `yaml:"aggregate"`
}

// LabelRules is the label→base-score table.
type LabelRules struct {
	Scores       map[domain.RatingLabel]int `yaml:"scores"`
	Unrecognized int                        `yaml:"unrecognized"`
	// AncestorPenalty is subtracted when only a parent domain matched.
	AncestorPenalty int `yaml:"ancestor_penalty"`
}

// DomainRule fires when the domain contains any Contains term or ends with
// any Suffix. Every rule is evaluated; deltas accumulate.
type DomainRule struct {
	Name     string           `yaml:"name"`
	Contains []string         `yaml:"contains"`
	Suffixes []string         `yaml:"suffixes"`
	Delta    domain.FactorSet `yaml:"delta"`
}

type MetadataRules struct {
	AuthorBonusEach int              `yaml:"author_bonus_each"`
	AuthorBonusCap  int              `yaml:"author_bonus_cap"`
	PublisherTerms  []string         `yaml:"publisher_terms"`
	PublisherDelta  domain.FactorSet `yaml:"publisher_delta"`
	DOIDelta        domain.FactorSet `yaml:"doi_delta"`
}

// RecencyTier is one step of the publication-age cascade. Tiers are tested
// in order and the first whose comparison holds wins.
type RecencyTier struct {
	// Op is "le" (age <= Age) or "ge" (age >= Age).
	Op    string `yaml:"op"`
	Age   int    `yaml:"age"`
	Delta int    `yaml:"delta"`
}

// Matches reports whether age satisfies the tier.
func (t RecencyTier) Matches(age int) bool {
	switch t.Op {
	case "le":
		return age <= t.Age
	case "ge":
		return age >= t.Age
	}
	return false
}

type ContextRules struct {
	MedicalTerms     []string `yaml:"medical_terms"`
	MedicalJournal   int      `yaml:"medical_journal"`
	MedicalNews      int      `yaml:"medical_news"`
	StatisticalTerms []string `yaml:"statistical_terms"`
	StatisticalFit   int      `yaml:"statistical_fit"`
	StatisticalWeb   int      `yaml:"statistical_web"`
	CurrentTerms     []string `yaml:"current_terms"`
	// CurrentYearSpan adds the tokens currentYear-span … currentYear to
	// CurrentTerms.
	CurrentYearSpan int `yaml:"current_year_span"`
	// CurrentMaxAge is the oldest issue age that still counts as current.
	CurrentMaxAge int `yaml:"current_max_age"`
	CurrentFit    int `yaml:"current_fit"`
}

// AggregateRules shapes the final score. Above Ceiling, the excess is
// multiplied by Compression.
type AggregateRules struct {
	Ceiling     int     `yaml:"ceiling"`
	Compression float64 `yaml:"compression"`
	Min         int     `yaml:"min"`
	Max         int     `yaml:"max"`
}

// LabelScore returns the base score for a parsed label.
func (r *Rules) LabelScore(l domain.RatingLabel) int {
	if s, ok := r.Labels.Scores[l]; ok {
		return s
	}
	return r.Labels.Unrecognized
}

// Validate checks that every label and every citation type is classified and
// that the aggregation bounds are sane.
func (r *Rules) Validate() error {
	for _, l := range domain.RatingLabels {
		s, ok := r.Labels.Scores[l]
		if !ok {
			return fmt.Errorf("label %q has no base score", l)
		}
		if s < 0 || s > 100 {
			return fmt.Errorf("label %q base score %d outside [0,100]", l, s)
		}
	}
	for _, t := range domain.CitationTypes {
		if _, ok := r.TypeBonus[t]; !ok {
			return fmt.Errorf("citation type %q has no bonus entry", t)
		}
	}
	for i, tier := range r.Recency {
		if tier.Op != "le" && tier.Op != "ge" {
			return fmt.Errorf("recency tier %d: unknown op %q", i, tier.Op)
		}
	}
	if r.Aggregate.Min > r.Aggregate.Max {
		return fmt.Errorf("aggregate min %d above max %d", r.Aggregate.Min, r.Aggregate.Max)
	}
	if r.Aggregate.Compression < 0 || r.Aggregate.Compression > 1 {
		return fmt.Errorf("aggregate compression %v outside [0,1]", r.Aggregate.Compression)
	}
	return nil
}

// LoadFile reads a YAML override file on top of Default. Tables present in
// the file replace or extend the defaults key by key; lists replace wholesale.
func LoadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML overrides on top of Default.
func Parse(data []byte) (*Rules, error) {
	r := Default()
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return r, nil
}
