package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cuneitools/lemmerge/internal/cache"
	"github.com/cuneitools/lemmerge/internal/cluster"
	"github.com/cuneitools/lemmerge/internal/config"
	"github.com/cuneitools/lemmerge/internal/corpus"
	"github.com/cuneitools/lemmerge/internal/debug"
	"github.com/cuneitools/lemmerge/internal/progress"
	"github.com/cuneitools/lemmerge/internal/report"
)

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Cluster lemmas by spelling distance and report merge candidates",
		ArgsUsage: "<input-glob>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Input format: freq or plain",
			},
			&cli.BoolFlag{
				Name:  "no-freqs",
				Usage: "Omit frequency annotations from output labels",
			},
			&cli.BoolFlag{
				Name:  "merge-linked",
				Usage: "Absorb each candidate's own candidates (can chain unrelated lemmas)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Sweep parallelism (0 = one per CPU)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress progress output",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the report to a file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "cache-dir",
				Usage: "Reuse clustering results for unchanged corpora",
			},
		},
		Action: runCompare,
	}
}

func runCompare(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: lemmerge compare <input-glob>")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	store, err := corpus.LoadGlob(c.Args().First(), corpus.Format(cfg.Compare.Format))
	if err != nil {
		return err
	}

	out := c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	edges, err := clusterStore(store, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}

	var absorbed map[string]bool
	if cfg.Compare.MergeLinked {
		absorbed = cluster.MergeLinked(edges, store.Forms())
		debug.Logf("transitive merge absorbed %d of %d keys", len(absorbed), len(edges))
	}

	return report.Write(out, store, edges, absorbed, report.Options{
		ShowFrequencies: cfg.Compare.ShowFrequencies,
	})
}

// clusterStore runs the pairwise sweep, or reuses a cached result when the
// corpus fingerprint matches a previous run.
func clusterStore(store *corpus.Store, cfg *config.Config, errw io.Writer) (cluster.Edges, error) {
	fingerprint := store.Fingerprint()
	debug.Logf("corpus fingerprint %016x, %d entries", fingerprint, store.Len())

	sweepCfg := cluster.Config{
		MaxLengthDelta: cfg.Compare.MaxLengthDelta,
		ShortThreshold: cfg.Compare.ShortThreshold,
		LongThreshold:  cfg.Compare.LongThreshold,
		LongFormLength: cfg.Compare.LongFormLength,
		Workers:        cfg.Compare.Workers,
	}
	if sweepCfg.Workers == 0 {
		sweepCfg.Workers = cluster.NumWorkers()
	}

	// The cache key covers the sweep tunables too: a threshold change on an
	// unchanged corpus produces different edges.
	if cfg.Cache.Dir != "" {
		if edges, ok := cache.Load(cfg.Cache.Dir, fingerprint, sweepCfg); ok {
			debug.Logf("cache hit in %s", cfg.Cache.Dir)
			return edges, nil
		}
	}

	var bar *progress.Sweep
	if !cfg.Compare.Quiet {
		fmt.Fprintf(errw, "%d entries, %d comparisons\n", store.Len(), cluster.Comparisons(store.Len()))
		bar = progress.NewSweep(store.Len(), errw)
		sweepCfg.OnRow = bar.Row
	}

	start := time.Now()
	edges := cluster.Sweep(store, sweepCfg)
	bar.Finish()
	debug.Logf("sweep finished in %s, %d keys with candidates", time.Since(start).Round(time.Millisecond), len(edges))

	if cfg.Cache.Dir != "" {
		if err := cache.Save(cfg.Cache.Dir, fingerprint, sweepCfg, edges); err != nil {
			// A failed cache write costs a future sweep, not this run.
			debug.Logf("cache save failed: %v", err)
		}
	}
	return edges, nil
}
