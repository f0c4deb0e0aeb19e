// Package cmd implements the quill command-line interface.
package cmd

import (
	"io"
	"os"
	"path/filepath"

	"quill/internal/config"
	"quill/internal/shell"

	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	View    *config.View // read-only configuration, loaded once per run
	SiteDir string       // directory containing _config.yml
	Runner  *shell.Runner
	Out     io.Writer
	Err     io.Writer
	JSON    bool // output in JSON format
}

// SitePath joins elem onto the site root directory.
func (a *App) SitePath(elem ...string) string {
	return filepath.Join(append([]string{a.SiteDir}, elem...)...)
}

// SourceDir returns the absolute source directory.
func (a *App) SourceDir() string {
	return a.SitePath(a.View.SourceDir())
}

// PostsDir returns the absolute posts directory.
func (a *App) PostsDir() string {
	return a.SitePath(a.View.SourceDir(), a.View.PostsDir())
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a
// terminal, otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// WarnColor returns the string wrapped in orange ANSI codes if stdout is a
// terminal, otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[38;5;214m" + s + "\033[0m"
	}
	return s
}
