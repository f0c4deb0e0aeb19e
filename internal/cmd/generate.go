package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the site generator",
		Long: `Run the configured site generator command (quill key
"generate_cmd") from the site root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			line := app.View.GenerateCmd()
			fmt.Fprintf(app.Out, "Generating site: %s\n", line)
			if err := app.Runner.RunLine(cmd.Context(), line); err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}

			fmt.Fprintln(app.Out, app.SuccessColor("Site generated."))
			return nil
		},
	}

	return cmd
}

// newPreviewCmd creates the preview command.
func newPreviewCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the site locally",
		Long: `Run the configured preview server command (quill key
"preview_cmd") from the site root. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			line := app.View.PreviewCmd()
			fmt.Fprintf(app.Out, "Previewing site: %s\n", line)
			return app.Runner.RunLine(cmd.Context(), line)
		},
	}

	return cmd
}
