// Command wild runs the Wild language interpreter: tokenize, parse, and
// evaluate a source file, exiting with main()'s integer result.
package main

import (
	"os"

	"github.com/wild-lang/wild/cmd/wild/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
