package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wild-lang/wild/internal/lexer"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <path>",
	Short: "Tokenize a Wild source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  lexFile,
}

func init() {
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
}

func lexFile(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	toks, err := lexer.Tokenize(string(src))
	if err != nil {
		return err
	}

	for _, tok := range toks {
		if showPos {
			fmt.Printf("%-12s %-20q @%d:%d\n", tok.Kind, tok.Lexeme, tok.Line, tok.Column)
		} else {
			fmt.Printf("%-12s %q\n", tok.Kind, tok.Lexeme)
		}
	}
	return nil
}
