package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"statecast/internal/specfile"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <specfile.yaml>",
		Short: "Validate a record-shape file without generating code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := specfile.LoadFile(args[0])
			if err != nil {
				return err
			}

			fields := 0
			for _, rec := range f.Records {
				fields += len(rec.Fields)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d records, %d fields, package %s)\n",
				args[0], len(f.Records), fields, f.Package)

			return nil
		},
	}
}
