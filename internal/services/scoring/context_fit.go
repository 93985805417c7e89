package scoring

import (
	"strconv"
	"strings"

	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
)

// ContextFit checks how well the cited work suits the claim it supports.
type ContextFit struct {
	Rules rules.ContextRules
}

func (a ContextFit) Analyze(in Input, f *domain.FactorSet) {
	if in.Context == "" {
		return
	}
	text := strings.ToLower(in.Context)
	md := in.metadata()

	if containsAny(text, a.Rules.MedicalTerms) {
		switch {
		case md.Type.IsJournal():
			f.ContextFit += a.Rules.MedicalJournal
		case md.Type.IsNews():
			f.ContextFit += a.Rules.MedicalNews
		}
	}

	if containsAny(text, a.Rules.StatisticalTerms) {
		switch {
		case md.Type.IsJournal() || hasDOI(md):
			f.ContextFit += a.Rules.StatisticalFit
		case md.Type == domain.CitationTypeWebpage:
			f.ContextFit += a.Rules.StatisticalWeb
		}
	}

	if containsAny(text, a.currentTerms(in.Year)) && md.Issued != nil {
		if md.Issued.Year >= in.Year-a.Rules.CurrentMaxAge {
			f.ContextFit += a.Rules.CurrentFit
		}
	}
}

func (a ContextFit) currentTerms(year int) []string {
	terms := make([]string, 0, len(a.Rules.CurrentTerms)+a.Rules.CurrentYearSpan+1)
	terms = append(terms, a.Rules.CurrentTerms...)
	for y := year - a.Rules.CurrentYearSpan; y <= year; y++ {
		terms = append(terms, strconv.Itoa(y))
	}
	return terms
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
