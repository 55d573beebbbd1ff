// Command veitch renders Karnaugh maps for Σ/Π boolean functions on the
// terminal.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/veitch/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "veitch:", err)
		os.Exit(1)
	}
}
