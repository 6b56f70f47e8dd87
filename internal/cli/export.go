package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/notewatch/internal/export"
	"github.com/user/notewatch/internal/notes"
)

// newExportCmd creates the export subcommand
func newExportCmd(opts *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every note to a static HTML site",
		Long: "export walks the notes directory and renders each markdown note to a\n" +
			"standalone HTML file, with fenced code blocks syntax-highlighted. The\n" +
			"folder structure of the notes directory is mirrored in the output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := notes.NewStore(opts.config.NotesDir, opts.logger)
			if err != nil {
				return err
			}

			exporter, err := export.New(store, outDir, opts.logger)
			if err != nil {
				return err
			}

			count, err := exporter.All()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d notes to %s\n", count, outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "./site", "Output directory for the HTML site")
	return cmd
}
