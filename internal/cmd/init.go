package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"quill/internal/config"

	"github.com/spf13/cobra"
)

// defaultSiteConfig is the _config.yml written by init. The patch engine
// edits this file textually, so the scaffold keeps a stable, comment-bearing
// layout rather than marshaling a struct.
const defaultSiteConfig = `# ----------------------- #
#      Site Settings      #
# ----------------------- #
url: http://example.com
title: My Site
subtitle: A static site
author: Your Name

# Publishing target. Change with "quill set root <dir>".
destination: public
root: /

# ----------------------- #
#     Quill Settings      #
# ----------------------- #
quill:
  theme: classic
  source_dir: source
  public_dir: public
  posts_dir: _posts
  stash_dir: _stash
  deploy_dir: _deploy
  deploy_default: rsync
  deploy_branch: main
  generate_cmd: jekyll build
  preview_cmd: jekyll serve
  new_post_ext: markdown
  new_page_ext: markdown
`

// defaultCompassConfig is the stylesheet compiler configuration written by
// init. "quill set root" rewrites the http paths in place.
const defaultCompassConfig = `# Compass configuration
http_path = "/"
http_images_path = "/images"
http_fonts_path = "/fonts"
css_dir = "public/stylesheets"
sass_dir = "source/stylesheets"
images_dir = "source/images"
`

// newInitCmd creates the init command.
// Note: init doesn't use the provider since it creates the site itself.
func newInitCmd(provider *AppProvider) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a new quill site",
		Long: `Initialize a new quill site skeleton.

Creates _config.yml with a quill section, config.rb, the source tree,
and an empty classic theme. Defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := provider.Out
			if out == nil {
				out = os.Stdout
			}
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(out, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing _config.yml")

	return cmd
}

func runInit(out io.Writer, dir string, force bool) error {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		dir = cwd
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	configPath := filepath.Join(absPath, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		if !force {
			return errors.New("site already initialized (use --force to overwrite)")
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", config.FileName, err)
	}

	dirs := []string{
		filepath.Join(absPath, "source", "_posts"),
		filepath.Join(absPath, "source", "stylesheets"),
		filepath.Join(absPath, "source", "images"),
		filepath.Join(absPath, "themes", "classic", "source"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultSiteConfig), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}
	compassPath := filepath.Join(absPath, "config.rb")
	if err := os.WriteFile(compassPath, []byte(defaultCompassConfig), 0644); err != nil {
		return fmt.Errorf("writing config.rb: %w", err)
	}

	fmt.Fprintf(out, "Initialized quill site at %s\n", absPath)
	return nil
}
