// main is the entry point for the haulstat CLI.
package main

import (
	"fmt"
	"os"

	"github.com/oreops/haulstat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
