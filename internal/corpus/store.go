// Package corpus loads and holds the lemma dataset: one record per surface
// form with its corpus frequency and the raw transliteration spellings
// attested for it. Records are built once at load time and never mutated;
// clustering and annotation only read them.
package corpus

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Record is a single lemma entry.
type Record struct {
	// SurfaceForm is the lemmatized headword and the unique store key.
	SurfaceForm string
	// Frequency is the attestation count from the input file (0 in plain
	// list mode).
	Frequency int
	// Spellings holds the raw transliterations in input order. Comparison
	// uses their normalized forms; display uses these.
	Spellings []string
}

// Store maps surface forms to records while preserving insertion order.
// The order is the clusterer's iteration order, so it must be stable
// run-to-run for identical input.
type Store struct {
	records map[string]Record
	order   []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]Record)}
}

// Add inserts or replaces a record. A surface form seen twice keeps its
// original position but takes the latest record, matching the overwrite
// semantics of loading into an insertion-ordered map.
func (s *Store) Add(rec Record) {
	if _, exists := s.records[rec.SurfaceForm]; !exists {
		s.order = append(s.order, rec.SurfaceForm)
	}
	s.records[rec.SurfaceForm] = rec
}

// Get returns the record for a surface form.
func (s *Store) Get(surfaceForm string) (Record, bool) {
	rec, ok := s.records[surfaceForm]
	return rec, ok
}

// Forms returns all surface forms in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *Store) Forms() []string {
	return s.order
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.order)
}

// Fingerprint hashes every record in insertion order. Two stores with the
// same records in the same order produce the same value, which keys the
// result cache.
func (s *Store) Fingerprint() uint64 {
	h := xxhash.New()
	for _, form := range s.order {
		rec := s.records[form]
		_, _ = h.WriteString(form)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(strconv.Itoa(rec.Frequency))
		_, _ = h.Write([]byte{0})
		for _, sp := range rec.Spellings {
			_, _ = h.WriteString(sp)
			_, _ = h.Write([]byte{0x1f})
		}
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}
