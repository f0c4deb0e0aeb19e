package cmd

import (
	"fmt"
	"os"

	"quill/internal/scaffold"

	"github.com/spf13/cobra"
)

// newInstallCmd creates the install command.
func newInstallCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [theme]",
		Short: "Install a theme into the source directory",
		Long: `Install a theme by copying themes/<theme>/source into the site
source directory. Defaults to the configured theme.

Examples:
  quill install
  quill install classic`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			theme := app.View.Theme()
			if len(args) > 0 {
				theme = args[0]
			}

			themeSource := app.SitePath("themes", theme, "source")
			if info, err := os.Stat(themeSource); err != nil || !info.IsDir() {
				return fmt.Errorf("theme %q not found at %s", theme, themeSource)
			}

			if err := scaffold.CopyDir(themeSource, app.SourceDir()); err != nil {
				return fmt.Errorf("installing theme %q: %w", theme, err)
			}

			fmt.Fprintf(app.Out, "%s\n", app.SuccessColor(fmt.Sprintf("Installed theme %q into %s", theme, app.View.SourceDir())))
			return nil
		},
	}

	return cmd
}
