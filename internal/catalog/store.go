package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// RawRecord is one catalog row as produced by the dataset loader. Rating
// cells are carried as raw strings: coercion happens at scoring time so a
// bad cell fails the request that touches it, not catalog construction.
type RawRecord struct {
	Brand           string
	Model           string
	Category        string
	BrandRating     string
	ProcessorRating string
	BatteryRating   string
	CameraRating    string
}

// Record is a per-request working copy of a catalog row. TotalScore is
// recomputed for every request and never written back to the store.
type Record struct {
	Brand           string
	Model           string
	Category        string
	BrandRating     string
	ProcessorRating string
	BatteryRating   string
	CameraRating    string
	TotalScore      float64
}

// Store holds the phone catalog, loaded once at startup and read-only
// afterwards. Access goes through snapshot copies, so no locking is needed
// under concurrent requests.
type Store struct {
	records []RawRecord
}

// New builds a Store from loader output. Dropping category-less rows is the
// loader's job; the store only asserts the sequence is non-empty after that
// filter.
func New(records []RawRecord) (*Store, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog: no records after category filtering")
	}
	cp := make([]RawRecord, len(records))
	copy(cp, records)
	return &Store{records: cp}, nil
}

// Normalize prepares a category or budget string for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DistinctCategories returns every category present, normalized,
// deduplicated and sorted ascending.
func (s *Store) DistinctCategories() []string {
	seen := make(map[string]struct{})
	for _, r := range s.records {
		c := Normalize(r.Category)
		if c == "" {
			continue
		}
		seen[c] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Records returns fresh working copies in catalog order. Callers own the
// returned slice; mutating it (scoring does) never touches the store.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = Record{
			Brand:           r.Brand,
			Model:           r.Model,
			Category:        r.Category,
			BrandRating:     r.BrandRating,
			ProcessorRating: r.ProcessorRating,
			BatteryRating:   r.BatteryRating,
			CameraRating:    r.CameraRating,
		}
	}
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}
