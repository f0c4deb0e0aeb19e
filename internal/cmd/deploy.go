package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quill/internal/config"
	"quill/internal/scaffold"

	"github.com/spf13/cobra"
)

// newDeployCmd creates the deploy command.
func newDeployCmd(provider *AppProvider) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the generated site",
		Long: `Deploy the generated site using the configured method.

Methods:
  rsync  rsync the public directory to a remote document root
         (requires quill keys "ssh_user" and "document_root")
  push   commit the public directory into the deploy directory's git
         repository and push the configured deploy branch

The method comes from the quill key "deploy_default" unless --method
is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			m := method
			if m == "" {
				m = app.View.DeployDefault()
			}

			switch m {
			case "rsync":
				return deployRsync(cmd.Context(), app)
			case "push":
				return deployPush(cmd.Context(), app)
			default:
				return fmt.Errorf("unknown deploy method %q (want rsync or push)", m)
			}
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "Deploy method (rsync or push)")

	return cmd
}

// requiredKey reads key through the view, translating an unknown key into a
// deploy-specific message.
func requiredKey(app *App, key string) (string, error) {
	v, err := app.View.Get(key)
	if err != nil {
		return "", fmt.Errorf("deploy requires the %q key in the %s section of %s",
			key, config.SectionKey, config.FileName)
	}
	return v, nil
}

func deployRsync(ctx context.Context, app *App) error {
	user, err := requiredKey(app, "ssh_user")
	if err != nil {
		return err
	}
	docRoot, err := requiredKey(app, "document_root")
	if err != nil {
		return err
	}

	args := []string{"-avz"}
	if port, err := app.View.Get("ssh_port"); err == nil {
		args = append(args, "-e", "ssh -p "+port)
	}
	if app.View.Bool("rsync_delete", false) {
		args = append(args, "--delete")
	}
	args = append(args, app.SitePath(app.View.PublicDir())+"/", user+":"+docRoot)

	fmt.Fprintf(app.Out, "Deploying %s to %s:%s via rsync\n", app.View.PublicDir(), user, docRoot)
	if err := app.Runner.Run(ctx, "rsync", args...); err != nil {
		return fmt.Errorf("rsync deploy failed: %w", err)
	}

	fmt.Fprintln(app.Out, app.SuccessColor("Deploy complete."))
	return nil
}

func deployPush(ctx context.Context, app *App) error {
	deployDir := app.SitePath(app.View.DeployDir())
	branch := app.View.DeployBranch()
	public := app.SitePath(app.View.PublicDir())

	if _, err := os.Stat(public); err != nil {
		return fmt.Errorf("nothing to deploy: %w (run quill generate first)", err)
	}

	git := app.Runner.InDir(deployDir)
	if _, err := os.Stat(filepath.Join(deployDir, ".git")); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("checking deploy directory: %w", err)
		}
		if err := os.MkdirAll(deployDir, 0755); err != nil {
			return fmt.Errorf("creating deploy directory: %w", err)
		}
		if err := git.Run(ctx, "git", "init", "-b", branch); err != nil {
			return err
		}
	}

	// Refresh the staged tree from the generated output, keeping .git.
	if err := clearExceptGit(deployDir); err != nil {
		return fmt.Errorf("clearing deploy directory: %w", err)
	}
	if err := scaffold.CopyDir(public, deployDir); err != nil {
		return fmt.Errorf("staging site: %w", err)
	}

	message := "Site updated at " + time.Now().UTC().Format(time.RFC3339)
	if err := git.Run(ctx, "git", "add", "-A"); err != nil {
		return err
	}
	if err := git.Run(ctx, "git", "commit", "-m", message); err != nil {
		return err
	}
	if err := git.Run(ctx, "git", "push", "origin", branch); err != nil {
		return fmt.Errorf("push deploy failed: %w", err)
	}

	fmt.Fprintln(app.Out, app.SuccessColor("Deploy complete."))
	return nil
}

// clearExceptGit removes everything inside dir except the .git directory.
func clearExceptGit(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name() == ".git" {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
