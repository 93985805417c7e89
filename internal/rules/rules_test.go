package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcescore/internal/domain"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultLabelScores(t *testing.T) {
	r := Default()
	want := map[domain.RatingLabel]int{
		domain.LabelGenerallyReliable:   85,
		domain.LabelReliable:            80,
		domain.LabelMixed:               60,
		domain.LabelGenerallyUnreliable: 35,
		domain.LabelUnreliable:          25,
		domain.LabelDeprecated:          15,
		domain.LabelBlacklisted:         0,
		domain.LabelContextDependent:    65,
		domain.LabelUnknown:             50,
	}
	for l, score := range want {
		assert.Equal(t, score, r.LabelScore(l), "label %s", l)
	}
	assert.Equal(t, 50, r.LabelScore(domain.RatingLabel("questionable")))
	assert.Equal(t, 50, r.Labels.Unrecognized)
}

func TestDefaultTypeBonusClassifiesEveryType(t *testing.T) {
	r := Default()
	for _, ct := range domain.CitationTypes {
		_, ok := r.TypeBonus[ct]
		assert.True(t, ok, "citation type %q has no bonus entry", ct)
	}
	assert.Len(t, r.TypeBonus, len(domain.CitationTypes))
}

func TestValidateRejectsGaps(t *testing.T) {
	r := Default()
	delete(r.TypeBonus, domain.CitationTypeWebpage)
	assert.ErrorContains(t, r.Validate(), "webpage")

	r = Default()
	delete(r.Labels.Scores, domain.LabelMixed)
	assert.ErrorContains(t, r.Validate(), "mixed")

	r = Default()
	r.Labels.Scores[domain.LabelReliable] = 120
	assert.Error(t, r.Validate())

	r = Default()
	r.Aggregate.Compression = 1.5
	assert.Error(t, r.Validate())
}

func TestRecencyTierMatches(t *testing.T) {
	assert.True(t, RecencyTier{Op: "le", Age: 2}.Matches(2))
	assert.False(t, RecencyTier{Op: "le", Age: 2}.Matches(3))
	assert.True(t, RecencyTier{Op: "ge", Age: 10}.Matches(10))
	assert.False(t, RecencyTier{Op: "ge", Age: 10}.Matches(9))
	assert.False(t, RecencyTier{Op: "eq", Age: 10}.Matches(10))
}

func TestParseOverridesDefaults(t *testing.T) {
	r, err := Parse([]byte(`
labels:
  scores:
    mixed: 55
aggregate:
  ceiling: 85
context:
  current_year_span: 0
`))
	require.NoError(t, err)

	assert.Equal(t, 55, r.LabelScore(domain.LabelMixed))
	assert.Equal(t, 85, r.LabelScore(domain.LabelGenerallyReliable), "untouched keys keep defaults")
	assert.Equal(t, 85, r.Aggregate.Ceiling)
	assert.InDelta(t, 0.3, r.Aggregate.Compression, 1e-9)
	assert.Equal(t, 0, r.Context.CurrentYearSpan)
	assert.Len(t, r.Domains, 6)
}

func TestParseReplacesDomainRules(t *testing.T) {
	r, err := Parse([]byte(`
domains:
  - name: wiki
    contains: ["wiki"]
    delta:
      editorial_control: -20
`))
	require.NoError(t, err)
	require.Len(t, r.Domains, 1)
	assert.Equal(t, "wiki", r.Domains[0].Name)
	assert.Equal(t, domain.FactorSet{EditorialControl: -20}, r.Domains[0].Delta)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`recency: [{op: "lt", age: 3, delta: 1}]`))
	assert.ErrorContains(t, err, "unknown op")

	_, err = Parse([]byte(`labels: [1, 2]`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("labels:\n  ancestor_penalty: 10\n"), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Labels.AncestorPenalty)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
