package cmd

import (
	"os"
	"path/filepath"
)

// removeContents deletes everything inside dir, keeping dir itself.
// A missing dir is not an error.
func removeContents(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
