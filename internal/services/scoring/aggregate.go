package scoring

import (
	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
)

// Aggregate combines the base score with every factor. Scores above the
// ceiling are compressed so stacked factors cannot trivially reach the
// maximum. The result is truncated, not rounded, then clamped.
func Aggregate(r rules.AggregateRules, base int, f domain.FactorSet) int {
	adjusted := float64(base + f.Sum())
	ceiling := float64(r.Ceiling)
	if adjusted > ceiling {
		adjusted = ceiling + (adjusted-ceiling)*r.Compression
	}
	final := int(adjusted)
	if final < r.Min {
		return r.Min
	}
	if final > r.Max {
		return r.Max
	}
	return final
}
