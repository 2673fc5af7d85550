package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/cuneitools/lemmerge/internal/cluster"
	"github.com/cuneitools/lemmerge/internal/corpus"
	"github.com/cuneitools/lemmerge/internal/distance"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Summarize a corpus file without clustering it",
		ArgsUsage: "<input-glob>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Input format: freq or plain",
			},
		},
		Action: runStats,
	}
}

func runStats(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: lemmerge stats <input-glob>")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	store, err := corpus.LoadGlob(c.Args().First(), corpus.Format(cfg.Compare.Format))
	if err != nil {
		return err
	}

	spellings := 0
	longest, shortest := "", ""
	for _, form := range store.Forms() {
		rec, _ := store.Get(form)
		spellings += len(rec.Spellings)
		if longest == "" || distance.Length(form) > distance.Length(longest) {
			longest = form
		}
		if shortest == "" || distance.Length(form) < distance.Length(shortest) {
			shortest = form
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.App.Writer)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Entries", store.Len()},
		{"Spellings", spellings},
		{"Comparisons", cluster.Comparisons(store.Len())},
		{"Fingerprint", fmt.Sprintf("%016x", store.Fingerprint())},
		{"Longest lemma", longest},
		{"Shortest lemma", shortest},
	})
	t.Render()
	return nil
}
