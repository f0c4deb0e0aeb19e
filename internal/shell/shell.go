// Package shell runs the external tools quill delegates to: site generators,
// rsync, and git.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes external commands with output streamed to the attached
// writers.
type Runner struct {
	Dir string // working directory for commands; "" means inherit
	Out io.Writer
	Err io.Writer
}

// Run executes name with args and waits for it to finish.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Out
	cmd.Stderr = r.Err
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// RunLine splits a configured command line on whitespace and runs it.
// Quoting is not interpreted; configured commands are simple tool + flags.
func (r *Runner) RunLine(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return errors.New("empty command line")
	}
	return r.Run(ctx, fields[0], fields[1:]...)
}

// InDir returns a copy of r that runs commands from dir.
func (r *Runner) InDir(dir string) *Runner {
	return &Runner{Dir: dir, Out: r.Out, Err: r.Err}
}
