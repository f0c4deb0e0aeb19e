package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"quill/internal/scaffold"

	"github.com/spf13/cobra"
)

// newNewCmd creates the new command with post/page subcommands.
func newNewCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold new site content",
	}

	cmd.AddCommand(newNewPostCmd(provider))
	cmd.AddCommand(newNewPageCmd(provider))

	return cmd
}

// newNewPostCmd creates the "new post" subcommand.
func newNewPostCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post <title>",
		Short: "Create a new post",
		Long: `Create a dated post file in the posts directory with YAML front
matter. The filename is derived from today's date and a slug of the title.

Examples:
  quill new post "Hello World"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			title := strings.Join(args, " ")
			now := time.Now()
			name := scaffold.PostFileName(title, app.View.NewPostExt(), now)
			path := filepath.Join(app.PostsDir(), name)

			if err := scaffold.WritePost(path, title, now); err != nil {
				return fmt.Errorf("creating post: %w", err)
			}

			fmt.Fprintf(app.Out, "Created %s\n", path)
			return nil
		},
	}

	return cmd
}

// newNewPageCmd creates the "new page" subcommand.
func newNewPageCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page <path>",
		Short: "Create a new page",
		Long: `Create a page under the source directory with YAML front matter.
A path without an extension becomes a directory with an index file.

Examples:
  quill new page about
  quill new page about/contact.markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			rel := strings.Trim(args[0], "/")
			title := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
			if filepath.Ext(rel) == "" {
				rel = filepath.Join(rel, "index."+app.View.NewPageExt())
			}
			path := filepath.Join(app.SourceDir(), rel)

			if err := scaffold.WritePage(path, title, time.Now()); err != nil {
				return fmt.Errorf("creating page: %w", err)
			}

			fmt.Fprintf(app.Out, "Created %s\n", path)
			return nil
		},
	}

	return cmd
}
