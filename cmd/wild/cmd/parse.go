package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wild-lang/wild/internal/astprint"
	"github.com/wild-lang/wild/internal/lexer"
	"github.com/wild-lang/wild/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Parse a Wild source file and print the resulting AST",
	Args:  cobra.ExactArgs(1),
	RunE:  parseFile,
}

func parseFile(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	toks, err := lexer.Tokenize(string(src))
	if err != nil {
		return err
	}
	prog, err := parser.New(toks).Parse()
	if err != nil {
		return err
	}

	fmt.Print(astprint.Program(prog))
	return nil
}
