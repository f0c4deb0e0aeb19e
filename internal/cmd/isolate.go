package cmd

import (
	"fmt"

	"quill/internal/scaffold"

	"github.com/spf13/cobra"
)

// newIsolateCmd creates the isolate command.
func newIsolateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isolate <match>",
		Short: "Stash all posts except those matching a filename substring",
		Long: `Move every post whose filename does not contain <match> into the
stash directory, so generate runs only rebuild the posts you are working
on. Restore them with "quill integrate".

Examples:
  quill isolate hello-world`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			stash := app.SitePath(app.View.SourceDir(), app.View.StashDir())
			moved, err := scaffold.Isolate(app.PostsDir(), stash, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Stashed %d post(s) in %s\n", len(moved), stash)
			return nil
		},
	}

	return cmd
}

// newIntegrateCmd creates the integrate command.
func newIntegrateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Restore stashed posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			stash := app.SitePath(app.View.SourceDir(), app.View.StashDir())
			moved, err := scaffold.Integrate(app.PostsDir(), stash)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Restored %d post(s)\n", len(moved))
			return nil
		},
	}

	return cmd
}
