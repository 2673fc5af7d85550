package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cuneitools/lemmerge/internal/translit"
)

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Print the comparison form of transliterations (args, or stdin lines)",
		ArgsUsage: "[spelling...]",
		Action:    runNormalize,
	}
}

func runNormalize(c *cli.Context) error {
	if c.NArg() > 0 {
		for _, arg := range c.Args().Slice() {
			fmt.Fprintln(c.App.Writer, translit.Normalize(arg))
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Fprintln(c.App.Writer, translit.Normalize(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
