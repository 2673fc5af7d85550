// Package cluster finds merge candidates by sweeping every unordered pair of
// surface forms in the store and recording an edge when their edit distance
// falls within a length-dependent threshold. Edges are directed: a pair is
// recorded once, from the form that comes first in store order, which halves
// the pairwise work. That asymmetry is intentional and must not be "fixed"
// into a symmetric relation.
package cluster

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cuneitools/lemmerge/internal/corpus"
	"github.com/cuneitools/lemmerge/internal/distance"
)

// Edges maps a surface form to its merge candidates in discovery order.
type Edges map[string][]string

// Config holds the sweep tunables.
type Config struct {
	// MaxLengthDelta is the length gate: pairs whose rune lengths differ by
	// more than this are skipped without scoring. A pruning heuristic that
	// trades recall for speed.
	MaxLengthDelta int
	// ShortThreshold is the maximum accepted score for forms shorter than
	// LongFormLength.
	ShortThreshold int
	// LongThreshold is the maximum accepted score for forms of at least
	// LongFormLength runes. Longer words tolerate one more edit because a
	// fixed number of edits is proportionally less disruptive there.
	LongThreshold int
	// LongFormLength is the rune length at which LongThreshold applies.
	LongFormLength int
	// Workers sets the parallelism of the sweep. Values below 2 run
	// sequentially; 0 is treated as 1. Use NumWorkers for an automatic
	// choice.
	Workers int
	// OnRow, when non-nil, is called once per completed outer row. With
	// Workers > 1 it is called from multiple goroutines and must be safe
	// for concurrent use.
	OnRow func()
}

// DefaultConfig returns the thresholds tuned for Oracc lemma lists.
func DefaultConfig() Config {
	return Config{
		MaxLengthDelta: 3,
		ShortThreshold: 1,
		LongThreshold:  2,
		LongFormLength: 8,
		Workers:        1,
	}
}

// NumWorkers returns the worker count to use for an automatic setting.
func NumWorkers() int {
	return runtime.NumCPU()
}

// Comparisons returns the number of pairwise comparisons reported for a
// sweep over n entries. Kept as the triangular running total the progress
// banner has always shown, so banners stay comparable across corpus runs.
func Comparisons(n int) int {
	i, j := 1, 1
	for i < n {
		i++
		j += i
	}
	return j
}

// Sweep compares all unordered pairs of store entries and returns the edge
// map. Store order fixes both the pair orientation and the per-key candidate
// order, so identical input yields identical output.
func Sweep(store *corpus.Store, cfg Config) Edges {
	forms := store.Forms()
	lens := make([]int, len(forms))
	for i, f := range forms {
		lens[i] = distance.Length(f)
	}

	if cfg.Workers > 1 && len(forms) > 1 {
		return sweepParallel(forms, lens, cfg)
	}

	edges := make(Edges)
	for i := range forms {
		if row := sweepRow(forms, lens, i, cfg); len(row) > 0 {
			edges[forms[i]] = row
		}
		if cfg.OnRow != nil {
			cfg.OnRow()
		}
	}
	return edges
}

// sweepRow scores forms[i] against every later form and returns the
// accepted candidates in order.
func sweepRow(forms []string, lens []int, i int, cfg Config) []string {
	w1 := forms[i]
	threshold := cfg.ShortThreshold
	if lens[i] >= cfg.LongFormLength {
		threshold = cfg.LongThreshold
	}

	var row []string
	for j := i + 1; j < len(forms); j++ {
		delta := lens[i] - lens[j]
		if delta < 0 {
			delta = -delta
		}
		if delta > cfg.MaxLengthDelta {
			continue
		}
		if distance.Score(w1, forms[j]) <= threshold {
			row = append(row, forms[j])
		}
	}
	return row
}

// sweepParallel distributes outer rows across workers in stride order, so
// early (expensive) and late (cheap) rows spread evenly. Each worker owns a
// disjoint set of w1 keys and writes a private edge map; the maps are merged
// after Wait, so no locking is needed.
func sweepParallel(forms []string, lens []int, cfg Config) Edges {
	workers := cfg.Workers
	if workers > len(forms) {
		workers = len(forms)
	}

	partials := make([]Edges, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			part := make(Edges)
			for i := w; i < len(forms); i += workers {
				if row := sweepRow(forms, lens, i, cfg); len(row) > 0 {
					part[forms[i]] = row
				}
				if cfg.OnRow != nil {
					cfg.OnRow()
				}
			}
			partials[w] = part
			return nil
		})
	}
	// Workers never return errors; Wait is just the join point.
	_ = g.Wait()

	edges := make(Edges)
	for _, part := range partials {
		for k, v := range part {
			edges[k] = v
		}
	}
	return edges
}
