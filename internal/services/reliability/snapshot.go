package reliability

import (
	"log/slog"
	"strings"

	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
)

const (
	notFoundNotes = "Not found in RSP database"
	parentSuffix  = " (parent domain)"
)

type entry struct {
	record domain.ReliabilityRecord
	rating domain.RatingLabel
	score  int
}

// Snapshot is an immutable view of the reliability database. Lookups never
// mutate it, so it can be shared across goroutines without locking.
type Snapshot struct {
	entries         map[string]entry
	unknownScore    int
	ancestorPenalty int
}

// NewSnapshot indexes records by normalized domain. Later records win over
// earlier ones with the same domain. Labels that do not parse score as
// unrecognized and are reported once through logger.
func NewSnapshot(records []domain.ReliabilityRecord, r *rules.Rules, logger *slog.Logger) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Snapshot{
		entries:         make(map[string]entry, len(records)),
		unknownScore:    r.LabelScore(domain.LabelUnknown),
		ancestorPenalty: r.Labels.AncestorPenalty,
	}
	for _, rec := range records {
		key := NormalizeDomain(rec.Domain)
		if key == "" {
			continue
		}
		rating, ok := domain.ParseRatingLabel(rec.Label)
		score := r.LabelScore(rating)
		if !ok {
			score = r.Labels.Unrecognized
			logger.Warn("unrecognized rating label", "domain", key, "label", rec.Label, "base_score", score)
		}
		rec.Domain = key
		s.entries[key] = entry{record: rec, rating: rating, score: score}
	}
	return s
}

// Len returns the number of distinct domains in the snapshot.
func (s *Snapshot) Len() int { return len(s.entries) }

// Records returns the snapshot contents in no particular order.
func (s *Snapshot) Records() []domain.ReliabilityRecord {
	out := make([]domain.ReliabilityRecord, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.record)
	}
	return out
}

// Lookup resolves a domain against the snapshot. An exact entry wins;
// otherwise leading labels are stripped one at a time (a.b.c.com, b.c.com,
// c.com, com) and the first ancestor found answers with a reduced score.
func (s *Snapshot) Lookup(name string) domain.LookupResult {
	key := NormalizeDomain(name)
	if e, ok := s.entries[key]; ok {
		return domain.LookupResult{
			Domain:        key,
			Label:         e.record.Label,
			Rating:        e.rating,
			Notes:         e.record.Notes,
			BaseScore:     e.score,
			Match:         domain.MatchExact,
			MatchedDomain: key,
		}
	}

	labels := strings.Split(key, ".")
	for i := 1; i < len(labels); i++ {
		parent := strings.Join(labels[i:], ".")
		e, ok := s.entries[parent]
		if !ok {
			continue
		}
		return domain.LookupResult{
			Domain:        key,
			Label:         e.record.Label,
			Rating:        e.rating,
			Notes:         e.record.Notes + parentSuffix,
			BaseScore:     e.score - s.ancestorPenalty,
			Match:         domain.MatchAncestor,
			MatchedDomain: parent,
		}
	}

	return domain.LookupResult{
		Domain:    key,
		Label:     string(domain.LabelUnknown),
		Rating:    domain.LabelUnknown,
		Notes:     notFoundNotes,
		BaseScore: s.unknownScore,
		Match:     domain.MatchNone,
	}
}
