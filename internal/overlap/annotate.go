// Package overlap scores how strongly a merge candidate is corroborated by
// shared transliterations. Each of the target's spellings that normalizes to
// a spelling also attested for the candidate adds one star; two lemmas with
// several spellings in common are near-certain merge material.
package overlap

import (
	"errors"
	"fmt"

	"github.com/cuneitools/lemmerge/internal/corpus"
	"github.com/cuneitools/lemmerge/internal/translit"
)

// ErrUnknownLemma reports a surface form that is missing from the store.
// The clusterer only ever emits forms it read from the store, so hitting
// this is an internal defect, not bad user input.
var ErrUnknownLemma = errors.New("surface form not in store")

// Candidate is one annotated merge suggestion.
type Candidate struct {
	// SurfaceForm is the candidate lemma.
	SurfaceForm string
	// Stars counts the target spellings whose normalized form is attested
	// for the candidate. A target spelling matching several candidate
	// spellings still counts once, but two target spellings normalizing to
	// the same shared form count twice: this is a corroboration strength
	// signal, not a set intersection.
	Stars int
}

// Annotate scores every candidate against the target's spellings. Duplicate
// candidate names collapse to their first occurrence; candidates with no
// shared spelling are kept at zero stars.
func Annotate(target string, candidates []string, store *corpus.Store) ([]Candidate, error) {
	targetRec, ok := store.Get(target)
	if !ok {
		return nil, fmt.Errorf("annotate %q: %w", target, ErrUnknownLemma)
	}
	targetSpellings := translit.NormalizeAll(targetRec.Spellings)

	var out []Candidate
	seen := make(map[string]bool, len(candidates))
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true

		rec, ok := store.Get(name)
		if !ok {
			return nil, fmt.Errorf("annotate %q: candidate %q: %w", target, name, ErrUnknownLemma)
		}

		attested := make(map[string]bool, len(rec.Spellings))
		for _, s := range rec.Spellings {
			attested[translit.Normalize(s)] = true
		}

		stars := 0
		for _, t := range targetSpellings {
			if attested[t] {
				stars++
			}
		}
		out = append(out, Candidate{SurfaceForm: name, Stars: stars})
	}
	return out, nil
}
