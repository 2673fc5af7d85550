// Package cache persists clustering results so re-running on an unchanged
// corpus skips the quadratic sweep. Entries are keyed by the corpus
// fingerprint and the sweep tunables together: edges computed under one
// threshold set must never be served for another. A file is only ever valid
// for the exact key in its name and header; anything that fails to load is
// treated as a miss.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/cuneitools/lemmerge/internal/cluster"
)

type entry struct {
	Key   string              `json:"key"`
	Edges map[string][]string `json:"edges"`
}

// key folds the corpus fingerprint and every result-affecting sweep tunable
// into one cache key. Workers and the progress hook only change how the
// sweep runs, not what it finds, so they stay out of the key.
func key(fingerprint uint64, cfg cluster.Config) string {
	h := xxhash.New()
	fmt.Fprintf(h, "%016x|%d|%d|%d|%d",
		fingerprint, cfg.MaxLengthDelta, cfg.ShortThreshold, cfg.LongThreshold, cfg.LongFormLength)
	return fmt.Sprintf("%016x", h.Sum64())
}

func fileName(k string) string {
	return "clusters-" + k + ".json"
}

// Load returns the cached edges for a corpus fingerprint and sweep
// configuration. ok is false on any miss: absent file, unreadable JSON, or
// a stale key header.
func Load(dir string, fingerprint uint64, cfg cluster.Config) (cluster.Edges, bool) {
	k := key(fingerprint, cfg)
	data, err := os.ReadFile(filepath.Join(dir, fileName(k)))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if e.Key != k || e.Edges == nil {
		return nil, false
	}
	return cluster.Edges(e.Edges), true
}

// Save writes the edges for a corpus fingerprint and sweep configuration,
// creating dir if needed.
func Save(dir string, fingerprint uint64, cfg cluster.Config, edges cluster.Edges) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	k := key(fingerprint, cfg)
	data, err := json.Marshal(entry{
		Key:   k,
		Edges: edges,
	})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	path := filepath.Join(dir, fileName(k))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}
