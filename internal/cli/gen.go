package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"statecast/internal/gen"
	"statecast/internal/specfile"
)

func newGenCmd() *cobra.Command {
	var (
		outDir   string
		pkg      string
		filename string
	)

	cmd := &cobra.Command{
		Use:   "gen <specfile.yaml>",
		Short: "Generate conversion functions from a record-shape file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := specfile.LoadFile(args[0])
			if err != nil {
				return err
			}

			file, err := gen.Generate(f, gen.Config{PackageName: pkg, Filename: filename})
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}

			path, err := gen.WriteFile(file, dir)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: alongside the spec file)")
	cmd.Flags().StringVar(&pkg, "package", "", "override the generated package name")
	cmd.Flags().StringVar(&filename, "filename", "", "override the generated file name")

	return cmd
}
