package cmd

import (
	"fmt"
	"strings"

	"quill/internal/config"
	"quill/internal/patch"

	"github.com/spf13/cobra"
)

// newSetCmd creates the set command with root/url subcommands.
func newSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Rewrite site configuration in place",
		Long: `Rewrite configuration values across the site's config files.

Edits are textual and format-preserving: comments, spacing, and unrelated
keys are left untouched. Keys that do not already appear in a file are
skipped and reported, never inserted.`,
	}

	cmd.AddCommand(newSetRootCmd(provider))
	cmd.AddCommand(newSetURLCmd(provider))

	return cmd
}

// newSetRootCmd creates the "set root" subcommand.
func newSetRootCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "root <dir>",
		Short: "Point the site at a new root directory",
		Long: `Update every path that depends on the site's root directory:
the http paths and css directory in config.rb, and the destination and
root keys in _config.yml.

Examples:
  quill set root /
  quill set root /blog`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			root := normalizeRoot(args[0])
			fmt.Fprintf(app.Out, "Changing root directory to %q\n", root)

			compassEdits := []patch.Edit{
				{Key: "http_path", Value: root},
				{Key: "http_images_path", Value: joinRoot(root, "images")},
				{Key: "http_fonts_path", Value: joinRoot(root, "fonts")},
				{Key: "css_dir", Value: "public" + stylesheetSuffix(root)},
			}
			if err := applyAndReport(app, app.SitePath("config.rb"), compassEdits); err != nil {
				return err
			}

			siteEdits := []patch.Edit{
				{Key: "destination", Value: publicFor(root)},
				{Key: "root", Value: root},
			}
			return applyAndReport(app, app.SitePath(config.FileName), siteEdits)
		},
	}

	return cmd
}

// newSetURLCmd creates the "set url" subcommand.
func newSetURLCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url <url>",
		Short: "Set the published site URL",
		Long: `Update the url key in _config.yml.

Examples:
  quill set url https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			return applyAndReport(app, app.SitePath(config.FileName),
				[]patch.Edit{{Key: config.KeyURL, Value: args[0]}})
		},
	}

	return cmd
}

// applyAndReport runs the patcher against path and prints which keys were
// rewritten and which were skipped because they never appeared in the file.
func applyAndReport(app *App, path string, edits []patch.Edit) error {
	res, err := patch.Apply(path, edits)
	if err != nil {
		return err
	}

	for _, key := range res.Modified {
		fmt.Fprintf(app.Out, "  %s: updated %s\n", path, key)
	}
	for _, key := range res.Skipped {
		fmt.Fprintf(app.Out, "  %s\n", app.WarnColor(fmt.Sprintf("%s: key %s not found, skipped", path, key)))
	}
	return nil
}

// normalizeRoot reduces dir to a leading-slash, no-trailing-slash form.
// "/" stays "/".
func normalizeRoot(dir string) string {
	return "/" + strings.Trim(dir, "/")
}

// joinRoot appends seg to root without doubling slashes.
func joinRoot(root, seg string) string {
	if root == "/" {
		return "/" + seg
	}
	return root + "/" + seg
}

// publicFor returns the generated-output destination for root,
// e.g. "public" for "/" and "public/blog" for "/blog".
func publicFor(root string) string {
	if root == "/" {
		return "public"
	}
	return "public" + root
}

// stylesheetSuffix returns the path from the public directory to the
// stylesheets directory for root.
func stylesheetSuffix(root string) string {
	if root == "/" {
		return "/stylesheets"
	}
	return root + "/stylesheets"
}
