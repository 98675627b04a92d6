// Package cli provides the command-line interface for statecast-gen.
package cli

import (
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statecast-gen",
		Short: "statecast-gen - record conversion code generator",
		Long: `statecast-gen expands declarative YAML record-shape files into Go
conversion functions that turn loosely-typed state maps into
strongly-typed records, one extract-and-coerce step per field.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenCmd(), newCheckCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
