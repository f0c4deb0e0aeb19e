package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"quill/internal/config"
	"quill/internal/shell"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use, so commands that do
// not need a site (init, help) never load configuration.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	SitePath   string
	JSONOutput bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call. The configuration
// document is loaded here exactly once per process.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a pre-built App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	siteDir, err := FindSiteDir(p.SitePath)
	if err != nil {
		return nil, err
	}

	doc, err := config.Load(filepath.Join(siteDir, config.FileName))
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{
		View:    config.NewView(doc),
		SiteDir: siteDir,
		Runner:  &shell.Runner{Dir: siteDir, Out: out, Err: errOut},
		Out:     out,
		Err:     errOut,
		JSON:    p.JSONOutput,
	}, nil
}

// FindSiteDir locates the site root, the directory containing _config.yml.
// If path is provided, it is used directly. Otherwise the search walks up
// from the current directory.
func FindSiteDir(path string) (string, error) {
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("cannot access site directory %s: %w", path, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("site path is not a directory: %s", path)
		}
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot get current directory: %w", err)
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, config.FileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found (searched from %s to /)", config.FileName, cwd)
		}
		dir = parent
	}
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quill",
		Short: "A task runner for static-site projects",
		Long: `Quill drives a static site's build and deploy lifecycle: scaffolding
posts and pages, running the site generator, deploying output, and editing
the project's configuration files in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&provider.SitePath, "path", "", "Path to the site root (default: search from cwd)")

	// Register all commands
	rootCmd.AddCommand(newInitCmd(provider))
	rootCmd.AddCommand(newInstallCmd(provider))
	rootCmd.AddCommand(newNewCmd(provider))
	rootCmd.AddCommand(newGenerateCmd(provider))
	rootCmd.AddCommand(newPreviewCmd(provider))
	rootCmd.AddCommand(newWatchCmd(provider))
	rootCmd.AddCommand(newCleanCmd(provider))
	rootCmd.AddCommand(newDeployCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newIsolateCmd(provider))
	rootCmd.AddCommand(newIntegrateCmd(provider))

	return rootCmd
}
