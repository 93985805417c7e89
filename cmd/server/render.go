package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sourcescore/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	fairStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	poorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func qualityStyle(q int) lipgloss.Style {
	switch {
	case q >= 80:
		return goodStyle
	case q >= 60:
		return fairStyle
	default:
		return poorStyle
	}
}

func renderScore(res domain.ScoreResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n",
		headerStyle.Render("Quality"),
		qualityStyle(res.Quality).Render(fmt.Sprintf("%d/100", res.Quality)),
		res.Label,
	)
	if res.Notes != "" {
		b.WriteString(dimStyle.Render(res.Notes) + "\n")
	}

	f := res.Factors
	rows := []struct {
		name  string
		value int
	}{
		{"editorial_control", f.EditorialControl},
		{"independence", f.Independence},
		{"fact_checking", f.FactChecking},
		{"expertise", f.Expertise},
		{"transparency", f.Transparency},
		{"recency", f.Recency},
		{"source_type_bonus", f.SourceTypeBonus},
		{"context_fit", f.ContextFit},
	}
	var factors strings.Builder
	for i, r := range rows {
		if i > 0 {
			factors.WriteString("\n")
		}
		fmt.Fprintf(&factors, "%-18s %+4d", r.name, r.value)
	}
	b.WriteString(boxStyle.Render(factors.String()) + "\n")

	for _, rec := range res.Recommendations {
		b.WriteString("• " + rec + "\n")
	}
	return b.String()
}

func renderLookup(info domain.LookupResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render(info.Domain), info.Label)
	fmt.Fprintf(&b, "base score %s  match %s", qualityStyle(info.BaseScore).Render(fmt.Sprint(info.BaseScore)), info.Match)
	if info.Match == domain.MatchAncestor {
		fmt.Fprintf(&b, " (%s)", info.MatchedDomain)
	}
	b.WriteString("\n")
	if info.Notes != "" {
		b.WriteString(dimStyle.Render(info.Notes) + "\n")
	}
	return b.String()
}
