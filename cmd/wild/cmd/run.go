package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wild-lang/wild/internal/interp"
	"github.com/wild-lang/wild/internal/lexer"
	"github.com/wild-lang/wild/internal/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Run a Wild source file",
	Args:  cobra.ArbitraryArgs,
	RunE:  runWild,
}

func init() {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = runWild
}

// runWild is the default behavior of `wild <path>` (spec.md §6). With no
// positional argument it prints a usage line to stdout and exits 0 — not
// an error, per the spec's explicit "retain this behaviour for
// compatibility" note on the original's usage-message convention.
func runWild(_ *cobra.Command, args []string) error {
	if len(args) < 1 {
		cyanColor.Println(usage())
		return nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	code, err := runSource(string(src))
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil
}

// runSource tokenizes, parses, and evaluates src, returning main()'s exit
// code or the first error any pipeline stage raised.
func runSource(src string) (int, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return 0, err
	}
	prog, err := parser.New(toks).Parse()
	if err != nil {
		return 0, err
	}
	return interp.New().Run(prog)
}
