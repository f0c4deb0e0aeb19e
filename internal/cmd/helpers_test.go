package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"quill/internal/config"
	"quill/internal/shell"
)

// testApp scaffolds a site in a temp directory and returns an App over it
// plus the buffer capturing command output.
func testApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	if err := runInit(io.Discard, dir, false); err != nil {
		t.Fatalf("scaffolding test site: %v", err)
	}

	doc, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("loading test site config: %v", err)
	}

	var buf bytes.Buffer
	return &App{
		View:    config.NewView(doc),
		SiteDir: dir,
		Runner:  &shell.Runner{Dir: dir, Out: &buf, Err: &buf},
		Out:     &buf,
		Err:     &buf,
	}, &buf
}
