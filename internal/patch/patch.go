// Package patch performs targeted, format-preserving edits to configuration
// files.
//
// Edits are matched against the file's serialized text rather than through a
// parse/re-serialize cycle, so comments, indentation, and unrelated keys are
// never disturbed. The cost is that a key must already exist in a
// recognizable textual shape: keys that are absent, commented out, or
// formatted unexpectedly are skipped without error. Result reports which
// edits actually landed so callers can detect the skips.
package patch

import (
	"fmt"
	"os"
)

// Edit is a single (key, new value) instruction. The value is substituted as
// literal text; callers render non-string values before building the Edit.
type Edit struct {
	Key   string
	Value string
}

// Result reports the outcome of an Apply call. Keys appear in application
// order; a key named in multiple edits appears once per edit that matched.
type Result struct {
	Modified []string // edits whose key matched and whose value was substituted
	Skipped  []string // edits whose key did not occur in a recognizable shape
}

// Apply folds edits left-to-right over the current text of the file at path
// and writes the result back, overwriting the file.
//
// Later edits see the text produced by earlier ones, so for a repeated key
// the last edit wins. The write is a plain overwrite, not an atomic replace:
// an interruption mid-write can leave the file truncated. Callers are
// expected to hold exclusive access to the file for the duration of the
// call.
func Apply(path string, edits []Edit) (*Result, error) {
	dialect, err := Resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := string(data)
	res := &Result{}
	for _, e := range edits {
		next, ok := replaceFirst(dialect.matcher(e.Key), text, e.Value)
		if !ok {
			res.Skipped = append(res.Skipped, e.Key)
			continue
		}
		text = next
		res.Modified = append(res.Modified, e.Key)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return res, nil
}

// ApplyOne applies a single edit; it is the one-element form of Apply.
func ApplyOne(path, key, value string) (*Result, error) {
	return Apply(path, []Edit{{Key: key, Value: value}})
}
