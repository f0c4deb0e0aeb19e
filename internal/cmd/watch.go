package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchSettle is how long the watcher waits after the last filesystem event
// before rerunning the generator, so editor save bursts trigger one build.
const watchSettle = 250 * time.Millisecond

// newWatchCmd creates the watch command.
func newWatchCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the site when source files change",
		Long: `Watch the source tree and rerun the generator whenever a file
changes. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), app)
		},
	}

	return cmd
}

func runWatch(ctx context.Context, app *App) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	source := app.SourceDir()
	if err := watchTree(watcher, source); err != nil {
		return err
	}

	generate := func() {
		if err := app.Runner.RunLine(ctx, app.View.GenerateCmd()); err != nil {
			fmt.Fprintf(app.Err, "%s\n", app.WarnColor(fmt.Sprintf("generate failed: %v", err)))
		}
	}

	fmt.Fprintf(app.Out, "Watching %s\n", source)
	generate()

	var settle *time.Timer
	var settleC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories need their own watch.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						fmt.Fprintf(app.Err, "watching %s: %v\n", event.Name, err)
					}
				}
			}
			if settle == nil {
				settle = time.NewTimer(watchSettle)
				settleC = settle.C
			} else {
				settle.Reset(watchSettle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(app.Err, "watch error: %v\n", err)
		case <-settleC:
			settle = nil
			settleC = nil
			generate()
		}
	}
}

// watchTree adds root and every directory beneath it to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
