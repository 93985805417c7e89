package scoring

import (
	"strings"

	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
)

// DomainHeuristics applies keyword and suffix rules to the domain string.
// A domain can match several rules; their deltas add up.
type DomainHeuristics struct {
	Rules []rules.DomainRule
}

func (a DomainHeuristics) Analyze(in Input, f *domain.FactorSet) {
	d := strings.ToLower(in.Domain)
	for _, rule := range a.Rules {
		if matchesDomainRule(rule, d) {
			f.Add(rule.Delta)
		}
	}
}

func matchesDomainRule(rule rules.DomainRule, d string) bool {
	for _, term := range rule.Contains {
		if strings.Contains(d, term) {
			return true
		}
	}
	for _, suffix := range rule.Suffixes {
		if strings.HasSuffix(d, suffix) {
			return true
		}
	}
	return false
}
