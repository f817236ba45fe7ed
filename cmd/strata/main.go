// Command strata runs, renders and converts strata UI documents.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/strata/cmd/strata/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
