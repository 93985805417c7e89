package reliability

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"sourcescore/internal/domain"
)

type cacheEntry struct {
	Label string `json:"label"`
	Notes string `json:"notes"`
}

// ParseCacheFile decodes the curated cache export format,
// {"example.com": {"label": "generally reliable", "notes": "..."}}. Records
// come back sorted by domain and are not validated.
func ParseCacheFile(data []byte) ([]domain.ReliabilityRecord, error) {
	var raw map[string]cacheEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode rsp cache: %w", err)
	}
	out := make([]domain.ReliabilityRecord, 0, len(raw))
	for d, e := range raw {
		out = append(out, domain.ReliabilityRecord{Domain: d, Label: e.Label, Notes: e.Notes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out, nil
}

// ReadCacheFile reads and parses a cache export from disk.
func ReadCacheFile(path string) ([]domain.ReliabilityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rsp cache: %w", err)
	}
	return ParseCacheFile(data)
}

// ValidateRecords normalizes records, splitting them into those fit for the
// store and the errors for the rest.
func ValidateRecords(records []domain.ReliabilityRecord) ([]domain.ReliabilityRecord, []error) {
	var (
		valid []domain.ReliabilityRecord
		errs  []error
	)
	for _, r := range records {
		v, err := ValidateRecord(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, v)
	}
	return valid, errs
}
