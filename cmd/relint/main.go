package main

import (
	"fmt"
	"os"

	"github.com/wharflab/relint/cmd/relint/cmd"
)

// exitUsageError is returned for malformed command-line options. It sits
// outside the shell-reserved low range so scripts can tell usage errors
// apart from findings (1) and fatal configuration errors (2).
const exitUsageError = 32

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsageError)
	}
}
