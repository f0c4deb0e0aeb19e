// quill is a task runner for static-site projects: scaffolding, generation,
// deployment, and configuration edits.
package main

import (
	"fmt"
	"os"

	"quill/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
