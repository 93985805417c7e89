package scoring

import (
	"strings"

	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
)

// MetadataAnalyzer scores citation metadata: item type, authorship,
// publisher, DOI and publication age.
type MetadataAnalyzer struct {
	TypeBonus map[domain.CitationType]int
	Rules     rules.MetadataRules
	Recency   []rules.RecencyTier
}

func (a MetadataAnalyzer) Analyze(in Input, f *domain.FactorSet) {
	if in.Metadata == nil {
		return
	}
	md := *in.Metadata

	// The type bonus replaces any earlier value rather than accumulating.
	f.SourceTypeBonus = a.TypeBonus[md.Type]

	if n := len(md.Authors); n > 0 {
		f.Expertise += min(n*a.Rules.AuthorBonusEach, a.Rules.AuthorBonusCap)
	}

	publisher := strings.ToLower(md.Publisher)
	for _, term := range a.Rules.PublisherTerms {
		if strings.Contains(publisher, term) {
			f.Add(a.Rules.PublisherDelta)
			break
		}
	}

	if hasDOI(md) {
		f.Add(a.Rules.DOIDelta)
	}

	if md.Issued != nil {
		age := in.Year - md.Issued.Year
		for _, tier := range a.Recency {
			if tier.Matches(age) {
				f.Recency += tier.Delta
				break
			}
		}
	}
}

func hasDOI(md domain.CitationMetadata) bool {
	return strings.TrimSpace(md.DOI) != ""
}
