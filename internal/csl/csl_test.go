package csl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcescore/internal/domain"
)

func TestDecodeFullItem(t *testing.T) {
	data := []byte(`{
		"type": "article-journal",
		"title": "Molecular Structure of Nucleic Acids",
		"author": [{"family": "Watson", "given": "J. D."}, {"literal": "Crick, F. H. C."}, "Wilkins"],
		"publisher": "Nature Publishing Group",
		"DOI": "10.1038/171737a0",
		"URL": "https://www.nature.com/articles/171737a0",
		"issued": {"date-parts": [[1953, 4, 25]]}
	}`)

	md, problems, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, problems)

	assert.Equal(t, domain.CitationTypeArticleJournal, md.Type)
	assert.Equal(t, []domain.Author{
		{Family: "Watson", Given: "J. D."},
		{Literal: "Crick, F. H. C."},
		{Literal: "Wilkins"},
	}, md.Authors)
	assert.Equal(t, "Nature Publishing Group", md.Publisher)
	assert.Equal(t, "10.1038/171737a0", md.DOI)
	assert.Equal(t, "https://www.nature.com/articles/171737a0", md.URL)
	assert.Equal(t, &domain.IssuedDate{Year: 1953, Month: 4, Day: 25}, md.Issued)
}

func TestDecodeEmptyObject(t *testing.T) {
	md, problems, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, problems)
	assert.Equal(t, domain.CitationMetadata{}, md)
}

func TestDecodeRejectsNonObject(t *testing.T) {
	for _, in := range []string{``, `[]`, `"webpage"`, `42`, `{"type": `} {
		_, _, err := Decode([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecodeUnknownTypeIsOther(t *testing.T) {
	md, problems, err := Decode([]byte(`{"type": "hologram"}`))
	require.NoError(t, err)
	assert.Empty(t, problems)
	assert.Equal(t, domain.CitationTypeOther, md.Type)
}

func TestDecodeStringDateParts(t *testing.T) {
	md, problems, err := Decode([]byte(`{"issued": {"date-parts": [["2024", " 3"]]}}`))
	require.NoError(t, err)
	assert.Empty(t, problems)
	assert.Equal(t, &domain.IssuedDate{Year: 2024, Month: 3}, md.Issued)
}

func TestDecodeMissingYear(t *testing.T) {
	for _, in := range []string{
		`{"issued": {}}`,
		`{"issued": {"date-parts": []}}`,
		`{"issued": {"date-parts": [[]]}}`,
		`{"issued": null}`,
	} {
		md, problems, err := Decode([]byte(in))
		require.NoError(t, err, in)
		assert.Empty(t, problems, in)
		assert.Nil(t, md.Issued, in)
	}
}

func TestDecodeMalformedFieldsAreDropped(t *testing.T) {
	data := []byte(`{
		"type": 7,
		"author": "Jane Doe",
		"publisher": "University of Chicago Press",
		"DOI": ["10.1/x"],
		"issued": {"date-parts": [["spring"]]},
		"URL": "https://press.uchicago.edu/"
	}`)

	md, problems, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, problems, 4)
	for _, p := range problems {
		assert.ErrorIs(t, p, ErrMalformedMetadata)
	}

	assert.Equal(t, domain.CitationTypeOther, md.Type)
	assert.Nil(t, md.Authors)
	assert.Empty(t, md.DOI)
	assert.Nil(t, md.Issued)
	assert.Equal(t, "University of Chicago Press", md.Publisher)
	assert.Equal(t, "https://press.uchicago.edu/", md.URL)
}

func TestDecodeSkipsBadAuthorEntries(t *testing.T) {
	md, problems, err := Decode([]byte(`{"author": [{"family": "Doe"}, 12, "Roe"]}`))
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0], ErrMalformedMetadata)
	assert.Equal(t, []domain.Author{{Family: "Doe"}, {Literal: "Roe"}}, md.Authors)
}

func TestDecodeNullOrBlankDOIIsEmpty(t *testing.T) {
	for _, in := range []string{
		`{"type": "article-journal", "DOI": null}`,
		`{"type": "article-journal", "DOI": ""}`,
		`{"type": "article-journal", "DOI": "   "}`,
	} {
		md, problems, err := Decode([]byte(in))
		require.NoError(t, err, in)
		assert.Empty(t, problems, in)
		assert.Equal(t, domain.CitationTypeArticleJournal, md.Type, in)
		assert.Empty(t, strings.TrimSpace(md.DOI), in)
	}
}
