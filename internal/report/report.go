// Package report renders the clustered, annotated results: one line per
// lemma that has at least one merge candidate.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cuneitools/lemmerge/internal/cluster"
	"github.com/cuneitools/lemmerge/internal/corpus"
	"github.com/cuneitools/lemmerge/internal/overlap"
)

// Options controls the output format.
type Options struct {
	// ShowFrequencies appends " (n)" with the corpus frequency to every
	// lemma label.
	ShowFrequencies bool
}

// Write emits one line per store form that has candidates, in store order:
//
//	Babil (8)\t\t\tBabili (7) | Babilu (8)*
//
// Candidate labels are deduplicated and sorted lexicographically by their
// full label, stars included, before joining. Forms tombstoned by a
// transitive merge are skipped; pass absorbed == nil when no merge ran.
func Write(w io.Writer, store *corpus.Store, edges cluster.Edges, absorbed map[string]bool, opts Options) error {
	for _, form := range store.Forms() {
		if absorbed[form] {
			continue
		}
		candidates, ok := edges[form]
		if !ok || len(candidates) == 0 {
			continue
		}

		annotated, err := overlap.Annotate(form, candidates, store)
		if err != nil {
			return err
		}

		labels := make([]string, 0, len(annotated))
		seen := make(map[string]bool, len(annotated))
		for _, c := range annotated {
			label := formatLabel(c.SurfaceForm, c.Stars, store, opts)
			if seen[label] {
				continue
			}
			seen[label] = true
			labels = append(labels, label)
		}
		sort.Strings(labels)

		target := formatLabel(form, 0, store, opts)
		if _, err := fmt.Fprintf(w, "%s\t\t\t%s\n", target, strings.Join(labels, " | ")); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// formatLabel renders a lemma label: name, optional frequency annotation,
// and one asterisk per shared normalized spelling.
func formatLabel(form string, stars int, store *corpus.Store, opts Options) string {
	label := form
	if opts.ShowFrequencies {
		rec, _ := store.Get(form)
		label = fmt.Sprintf("%s (%d)", form, rec.Frequency)
	}
	return label + strings.Repeat("*", stars)
}
