// Command skyval reads a skyscraper board from a text file and prints the
// validation verdict: "true" when the board is complete and rule-compliant,
// "false" otherwise. The exit code reflects process success, not board
// validity; only I/O and structural-boundary failures exit non-zero.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyval/board"
	"github.com/katalvlaran/skyval/rules"
)

var exact bool

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "skyval <file>",
		Short: "Validate a skyscraper puzzle board",
		Long: `Validate a skyscraper puzzle board stored as a square character grid:
interior cells hold height digits 1-9 (or ? for an unfilled cell), border
cells hold a visibility hint digit or * for no hint.

Examples:
  skyval check.txt
  skyval --exact check.txt`,
		Args:          cobra.ExactArgs(1),
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVar(&exact, "exact", false,
		"require visible counts to match hints exactly instead of at-least")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("check board")
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	rows, err := readBoard(args[0])
	if err != nil {
		return err
	}

	b, err := board.New(rows)
	if err != nil {
		return err
	}

	var opts []rules.Option
	if exact {
		opts = append(opts, rules.WithExactVisibility())
	}
	fmt.Fprintln(cmd.OutOrStdout(), rules.Validate(b, opts...))

	return nil
}

// readBoard loads the board file and splits it into trimmed, non-empty
// rows — the whitespace handling the core deliberately leaves to callers.
func readBoard(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}

	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}

	return rows, nil
}
