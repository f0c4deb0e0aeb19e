package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCleanCmd creates the clean command.
func newCleanCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated output",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			public := app.SitePath(app.View.PublicDir())
			if err := removeContents(public); err != nil {
				return fmt.Errorf("cleaning %s: %w", public, err)
			}

			fmt.Fprintf(app.Out, "Cleaned %s\n", public)
			return nil
		},
	}

	return cmd
}
