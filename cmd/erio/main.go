// Command erio is the Erio language CLI: run a script file, evaluate an
// inline snippet, or drop into the interactive REPL.
package main

import (
	"fmt"
	"os"

	"erio/cmd/erio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
