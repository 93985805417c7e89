package reliability

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecords() []domain.ReliabilityRecord {
	return []domain.ReliabilityRecord{
		{Domain: "example.com", Label: "reliable", Notes: "Curated entry"},
		{Domain: "nytimes.com", Label: "generally reliable", Notes: "Newspaper of record"},
		{Domain: "dailymail.co.uk", Label: "deprecated", Notes: "Deprecated in 2017"},
		{Domain: "forbes.com", Label: "context-dependent"},
		{Domain: "www.Mixed.ORG", Label: "Mixed"},
	}
}

func TestLookupExactMatch(t *testing.T) {
	s := NewSnapshot(testRecords(), rules.Default(), quietLogger())

	got := s.Lookup("nytimes.com")
	assert.Equal(t, domain.LookupResult{
		Domain:        "nytimes.com",
		Label:         "generally reliable",
		Rating:        domain.LabelGenerallyReliable,
		Notes:         "Newspaper of record",
		BaseScore:     85,
		Match:         domain.MatchExact,
		MatchedDomain: "nytimes.com",
	}, got)
}

func TestLookupNormalizesInput(t *testing.T) {
	s := NewSnapshot(testRecords(), rules.Default(), quietLogger())

	got := s.Lookup("  WWW.NYTimes.com. ")
	assert.Equal(t, domain.MatchExact, got.Match)
	assert.Equal(t, "nytimes.com", got.Domain)

	// Stored keys are normalized too.
	got = s.Lookup("mixed.org")
	assert.Equal(t, domain.MatchExact, got.Match)
	assert.Equal(t, 60, got.BaseScore)
}

func TestLookupAncestorFallback(t *testing.T) {
	s := NewSnapshot(testRecords(), rules.Default(), quietLogger())

	got := s.Lookup("blog.example.com")
	assert.Equal(t, domain.MatchAncestor, got.Match)
	assert.Equal(t, "example.com", got.MatchedDomain)
	assert.Equal(t, "reliable", got.Label)
	assert.Equal(t, 75, got.BaseScore)
	assert.Equal(t, "Curated entry (parent domain)", got.Notes)
	assert.Equal(t, "blog.example.com", got.Domain)
}

func TestLookupAncestorStopsAtFirstMatch(t *testing.T) {
	records := append(testRecords(), domain.ReliabilityRecord{Domain: "news.example.com", Label: "generally unreliable", Notes: "Sponsored"})
	s := NewSnapshot(records, rules.Default(), quietLogger())

	got := s.Lookup("a.b.news.example.com")
	assert.Equal(t, "news.example.com", got.MatchedDomain)
	assert.Equal(t, 30, got.BaseScore)
	assert.Equal(t, "Sponsored (parent domain)", got.Notes)
}

func TestLookupAncestorWithoutNotes(t *testing.T) {
	s := NewSnapshot(testRecords(), rules.Default(), quietLogger())

	got := s.Lookup("www.forbes.com.example")
	assert.Equal(t, domain.MatchNone, got.Match)

	got = s.Lookup("sites.forbes.com")
	assert.Equal(t, domain.MatchAncestor, got.Match)
	assert.Equal(t, " (parent domain)", got.Notes)
	assert.Equal(t, 60, got.BaseScore)
}

func TestLookupUnknownDomain(t *testing.T) {
	s := NewSnapshot(testRecords(), rules.Default(), quietLogger())

	for _, name := range []string{"unlisted.org", "deep.sub.unlisted.net", "localhost", ""} {
		got := s.Lookup(name)
		assert.Equal(t, "unknown", got.Label, name)
		assert.Equal(t, domain.LabelUnknown, got.Rating, name)
		assert.Equal(t, "Not found in RSP database", got.Notes, name)
		assert.Equal(t, 50, got.BaseScore, name)
		assert.Equal(t, domain.MatchNone, got.Match, name)
		assert.Empty(t, got.MatchedDomain, name)
	}
}

func TestSnapshotUnrecognizedLabelWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := NewSnapshot([]domain.ReliabilityRecord{{Domain: "odd.example", Label: "sketchy"}}, rules.Default(), logger)

	got := s.Lookup("odd.example")
	assert.Equal(t, "sketchy", got.Label)
	assert.Equal(t, domain.LabelUnrecognized, got.Rating)
	assert.Equal(t, 50, got.BaseScore)
	assert.Contains(t, buf.String(), "unrecognized rating label")
	assert.Contains(t, buf.String(), "odd.example")
}

func TestSnapshotLaterRecordsWin(t *testing.T) {
	s := NewSnapshot([]domain.ReliabilityRecord{
		{Domain: "www.site.com", Label: "reliable"},
		{Domain: "site.com", Label: "deprecated"},
		{Domain: "", Label: "reliable"},
	}, rules.Default(), quietLogger())

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 15, s.Lookup("site.com").BaseScore)
	assert.Len(t, s.Records(), 1)
}
