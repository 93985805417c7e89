package scoring

import "sourcescore/internal/domain"

const (
	AdviceFindAlternative  = "Find alternative sources - this source is not considered reliable"
	AdviceContextDependent = "Review context-dependent reliability - may be suitable for some claims"
	AdviceVerifyUnknown    = "Source not in RSP database - verify reliability independently"
	AdviceLowScore         = "Low reliability score - consider finding higher quality sources"
	AdviceModerateScore    = "Moderate reliability - acceptable for general claims"
	AdviceHighScore        = "High reliability - excellent source for Wikipedia"
	AdviceEditorialControl = "Limited editorial oversight - verify information independently"
	AdviceIndependence     = "May have conflicts of interest - consider independent sources"
	AdviceExpertise        = "Limited subject matter expertise - supplement with expert sources"
	AdviceRecency          = "Source is dated - consider more recent information if available"
)

const (
	lowScoreBelow         = 40
	moderateScoreBelow    = 60
	highScoreFrom         = 80
	editorialControlBelow = -5
	independenceBelow     = -5
	expertiseBelow        = 0
	recencyBelow          = -3
)

// Recommend builds the advisory list. Order is fixed: label advice, then the
// score tier, then factor warnings. Scores in [60,80) get no tier advice.
func Recommend(label domain.RatingLabel, score int, f domain.FactorSet) []string {
	out := []string{}

	switch {
	case label.Discouraged():
		out = append(out, AdviceFindAlternative)
	case label == domain.LabelContextDependent:
		out = append(out, AdviceContextDependent)
	case label == domain.LabelUnknown:
		out = append(out, AdviceVerifyUnknown)
	}

	switch {
	case score < lowScoreBelow:
		out = append(out, AdviceLowScore)
	case score < moderateScoreBelow:
		out = append(out, AdviceModerateScore)
	case score >= highScoreFrom:
		out = append(out, AdviceHighScore)
	}

	if f.EditorialControl < editorialControlBelow {
		out = append(out, AdviceEditorialControl)
	}
	if f.Independence < independenceBelow {
		out = append(out, AdviceIndependence)
	}
	if f.Expertise < expertiseBelow {
		out = append(out, AdviceExpertise)
	}
	if f.Recency < recencyBelow {
		out = append(out, AdviceRecency)
	}
	return out
}
