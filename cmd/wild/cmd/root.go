package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "wild",
	Short: "Wild language interpreter",
	Long: `wild is an interpreter for Wild, a small statically-typed C-family
scripting language. It tokenizes, parses, and tree-walks a source file,
printing via the built-in print and exiting with main()'s integer result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, returning any error for main to translate
// into a process exit code.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	cobra.OnInitialize(func() {
		if noColor || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	})
	rootCmd.AddCommand(runCmd, lexCmd, parseCmd)
}

func usage() string {
	return fmt.Sprintf("usage: %s <path>", rootCmd.Use)
}
