// Package main provides the CLI entrypoint for statecast-gen.
//
// statecast-gen is a codegen tool that:
//   - Loads declarative YAML record-shape files (ordered field name/kind pairs)
//   - Validates kinds, attribute names and nested record references
//   - Generates per-record conversion functions from state maps
package main

import (
	"fmt"
	"os"

	"statecast/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
