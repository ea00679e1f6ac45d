// Command tightbinding builds lattice foundations from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/tightbinding/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
