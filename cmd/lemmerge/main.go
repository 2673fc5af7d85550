// lemmerge finds lemmatization inconsistencies in transcribed Oracc corpora:
// lemmas whose transliterated spellings are orthographic variants of one
// another, reported as merge candidates with a shared-spelling score.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cuneitools/lemmerge/internal/config"
	"github.com/cuneitools/lemmerge/internal/debug"
	"github.com/cuneitools/lemmerge/internal/version"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lemmerge: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "lemmerge",
		Usage:                  "Find lemmas that are likely spelling variants of each other",
		Version:                version.Info(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Write diagnostics to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				debug.SetOutput(c.App.ErrWriter)
				debug.Logf("starting %s", version.FullInfo())
			}
			return nil
		},
		Commands: []*cli.Command{
			compareCommand(),
			statsCommand(),
			normalizeCommand(),
		},
	}
}

// loadConfigWithOverrides loads the config file and applies CLI flag
// overrides for every flag the user set explicitly.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("format") {
		cfg.Compare.Format = c.String("format")
	}
	if c.Bool("no-freqs") {
		cfg.Compare.ShowFrequencies = false
	}
	if c.Bool("merge-linked") {
		cfg.Compare.MergeLinked = true
	}
	if c.IsSet("workers") {
		cfg.Compare.Workers = c.Int("workers")
	}
	if c.Bool("quiet") {
		cfg.Compare.Quiet = true
	}
	if c.IsSet("cache-dir") {
		cfg.Cache.Dir = c.String("cache-dir")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
