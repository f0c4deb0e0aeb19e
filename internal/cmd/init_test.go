package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"quill/internal/config"
)

func TestInit(t *testing.T) {
	t.Run("creates site skeleton", func(t *testing.T) {
		dir := t.TempDir()

		provider := &AppProvider{}
		cmd := newInitCmd(provider)
		cmd.SetArgs([]string{dir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		for _, rel := range []string{
			config.FileName,
			"config.rb",
			filepath.Join("source", "_posts"),
			filepath.Join("themes", "classic", "source"),
		} {
			if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
				t.Errorf("%s was not created: %v", rel, err)
			}
		}

		// The written config loads cleanly through the store.
		doc, err := config.Load(filepath.Join(dir, config.FileName))
		if err != nil {
			t.Fatalf("loading scaffolded config: %v", err)
		}
		if v, ok := doc.Get("theme"); !ok || v != "classic" {
			t.Errorf("scaffolded theme = %q, %v; want classic", v, ok)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		dir := t.TempDir()

		cmd := newInitCmd(&AppProvider{})
		cmd.SetArgs([]string{dir})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("first init failed: %v", err)
		}

		cmd = newInitCmd(&AppProvider{})
		cmd.SetArgs([]string{dir})
		if err := cmd.Execute(); err == nil {
			t.Error("second init succeeded, want error")
		}

		cmd = newInitCmd(&AppProvider{})
		cmd.SetArgs([]string{dir, "--force"})
		if err := cmd.Execute(); err != nil {
			t.Errorf("init --force failed: %v", err)
		}
	})
}
