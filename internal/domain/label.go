package domain

import "strings"

// RatingLabel is the categorical reliability tier assigned to a domain.
type RatingLabel string

const (
	LabelGenerallyReliable   RatingLabel = "generally_reliable"
	LabelReliable            RatingLabel = "reliable"
	LabelMixed               RatingLabel = "mixed"
	LabelGenerallyUnreliable RatingLabel = "generally_unreliable"
	LabelUnreliable          RatingLabel = "unreliable"
	LabelDeprecated          RatingLabel = "deprecated"
	LabelBlacklisted         RatingLabel = "blacklisted"
	LabelContextDependent    RatingLabel = "context_dependent"
	LabelUnknown             RatingLabel = "unknown"

	// LabelUnrecognized marks curated label text that matches no tier. It
	// is not part of RatingLabels and carries no advisory of its own.
	LabelUnrecognized RatingLabel = "unrecognized"
)

// RatingLabels lists every label in rating-table order.
var RatingLabels = []RatingLabel{
	LabelGenerallyReliable,
	LabelReliable,
	LabelMixed,
	LabelGenerallyUnreliable,
	LabelUnreliable,
	LabelDeprecated,
	LabelBlacklisted,
	LabelContextDependent,
	LabelUnknown,
}

// ParseRatingLabel maps curated label text ("generally reliable",
// "Context-Dependent", "deprecated") onto a RatingLabel. Matching ignores case
// and treats spaces, hyphens and underscores alike. Unrecognized text yields
// LabelUnrecognized and ok=false.
func ParseRatingLabel(text string) (label RatingLabel, ok bool) {
	key := strings.ToLower(strings.TrimSpace(text))
	key = strings.Join(strings.FieldsFunc(key, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
	for _, l := range RatingLabels {
		if string(l) == key {
			return l, true
		}
	}
	return LabelUnrecognized, false
}

// Discouraged reports whether editors should look for a replacement source.
func (l RatingLabel) Discouraged() bool {
	switch l {
	case LabelDeprecated, LabelBlacklisted, LabelGenerallyUnreliable:
		return true
	}
	return false
}
