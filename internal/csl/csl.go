// Package csl decodes CSL-JSON citation items, as produced by the citation
// normalizer, into domain.CitationMetadata.
package csl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sourcescore/internal/domain"
)

// ErrMalformedMetadata marks a field that could not be decoded. Such fields
// are dropped; the rest of the item is still usable.
var ErrMalformedMetadata = errors.New("malformed citation metadata")

type item struct {
	Type      json.RawMessage `json:"type"`
	Author    json.RawMessage `json:"author"`
	Publisher json.RawMessage `json:"publisher"`
	DOI       json.RawMessage `json:"DOI"`
	Issued    json.RawMessage `json:"issued"`
	URL       json.RawMessage `json:"URL"`
}

// Decode parses one CSL-JSON item. It fails only when data is not a JSON
// object. Fields with the wrong shape are left empty and reported in
// problems, each wrapping ErrMalformedMetadata.
//
// A "DOI" key that is null or blank decodes to an empty DOI, and scoring only
// credits a DOI that is non-blank. Callers that want the bonus must send the
// identifier itself, not just the key.
func Decode(data []byte) (md domain.CitationMetadata, problems []error, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return md, nil, fmt.Errorf("csl item must be a JSON object")
	}
	var it item
	if err := json.Unmarshal(trimmed, &it); err != nil {
		return md, nil, fmt.Errorf("decode csl item: %w", err)
	}

	report := func(field string, cause error) {
		problems = append(problems, fmt.Errorf("%w: %s: %v", ErrMalformedMetadata, field, cause))
	}

	if s, err := optionalString(it.Type); err != nil {
		report("type", err)
	} else {
		md.Type = domain.ParseCitationType(s)
	}
	if md.Authors, err = decodeAuthors(it.Author); err != nil {
		report("author", err)
	}
	if md.Publisher, err = optionalString(it.Publisher); err != nil {
		report("publisher", err)
	}
	if md.DOI, err = optionalString(it.DOI); err != nil {
		report("DOI", err)
	}
	if md.URL, err = optionalString(it.URL); err != nil {
		report("URL", err)
	}
	if md.Issued, err = decodeIssued(it.Issued); err != nil {
		report("issued", err)
	}
	return md, problems, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func optionalString(raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("expected string")
	}
	return s, nil
}

type nameObject struct {
	Family  string `json:"family"`
	Given   string `json:"given"`
	Literal string `json:"literal"`
}

// decodeAuthors accepts CSL name objects and plain strings. Entries of any
// other shape are skipped; the first one is reported.
func decodeAuthors(raw json.RawMessage) ([]domain.Author, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("expected list")
	}
	var (
		out      []domain.Author
		firstErr error
	)
	for i, e := range entries {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			out = append(out, domain.Author{Literal: s})
			continue
		}
		var n nameObject
		if err := json.Unmarshal(e, &n); err == nil && bytes.HasPrefix(bytes.TrimSpace(e), []byte("{")) {
			out = append(out, domain.Author(n))
			continue
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("entry %d is neither a name nor a string", i)
		}
	}
	return out, firstErr
}

// decodeIssued reads {"date-parts": [[year, month?, day?]]}. Parts may be
// numbers or numeric strings. A date without a usable year yields nil.
func decodeIssued(raw json.RawMessage) (*domain.IssuedDate, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var wrapper struct {
		DateParts [][]json.RawMessage `json:"date-parts"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("expected object with date-parts")
	}
	if len(wrapper.DateParts) == 0 || len(wrapper.DateParts[0]) == 0 {
		return nil, nil
	}
	parts := wrapper.DateParts[0]
	year, err := datePart(parts[0])
	if err != nil {
		return nil, fmt.Errorf("year: %w", err)
	}
	d := &domain.IssuedDate{Year: year}
	if len(parts) > 1 {
		if d.Month, err = datePart(parts[1]); err != nil {
			d.Month = 0
		}
	}
	if len(parts) > 2 {
		if d.Day, err = datePart(parts[2]); err != nil {
			d.Day = 0
		}
	}
	return d, nil
}

func datePart(raw json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, fmt.Errorf("%s is not an integer", n)
		}
		return v, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("expected number")
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return v, nil
}
