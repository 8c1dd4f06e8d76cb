package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wildfunctions/computor/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Equation failures are already part of the report.
		if !errors.Is(err, cli.ErrFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
