package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/notewatch/internal/components/style"
)

// newThemesCmd creates the themes subcommand
func newThemesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := style.AvailableThemes()
			if err != nil {
				return err
			}

			for _, name := range names {
				theme, err := style.LoadTheme(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == opts.config.Theme {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n", marker, name, theme.Description)
			}
			return nil
		},
	}
}
