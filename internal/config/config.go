// Package config loads quill's settings from the site's _config.yml.
//
// Settings live under the top-level "quill:" mapping. The rest of the file
// belongs to the site generator and is ignored here. The document is loaded
// once per process and is immutable afterwards; quill changes configuration
// only by rewriting files on disk, which a future run picks up.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the site configuration file quill reads its section from.
const FileName = "_config.yml"

// SectionKey is the top-level mapping that holds quill's settings.
const SectionKey = "quill"

var (
	// ErrNotFound indicates the configuration file is absent or unreadable.
	ErrNotFound = errors.New("config file not found")

	// ErrMalformed indicates the file is not a structured mapping, has no
	// quill section, or the section contains duplicate or non-scalar entries.
	ErrMalformed = errors.New("config file malformed")

	// ErrUnknownKey indicates a read for a key absent from the loaded document.
	ErrUnknownKey = errors.New("unknown config key")
)

// Document is an immutable, ordered mapping of configuration keys to scalar
// values. Values keep their textual form from the file; callers convert as
// needed.
type Document struct {
	keys   []string
	values map[string]string
}

// Load reads the quill section of the config file at path.
// Key order from the file is preserved and duplicate keys are rejected.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformed)
	}

	section := findSection(top, SectionKey)
	if section == nil {
		return nil, fmt.Errorf("%w: missing %q section", ErrMalformed, SectionKey)
	}
	if section.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %q section is not a mapping", ErrMalformed, SectionKey)
	}

	doc := &Document{values: make(map[string]string)}
	for i := 0; i+1 < len(section.Content); i += 2 {
		keyNode := section.Content[i]
		valNode := section.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode || valNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %q section entries must be scalar", ErrMalformed, SectionKey)
		}
		key := keyNode.Value
		if _, exists := doc.values[key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrMalformed, key)
		}
		doc.keys = append(doc.keys, key)
		doc.values[key] = valNode.Value
	}

	return doc, nil
}

// findSection returns the value node for key in mapping, or nil.
func findSection(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// Get returns the value for key and whether it was present in the file.
func (d *Document) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the document's keys in file order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries in the document.
func (d *Document) Len() int {
	return len(d.keys)
}

// Bool reports the value for key parsed as a boolean.
// Missing or unparseable values return def.
func (d *Document) Bool(key string, def bool) bool {
	v, ok := d.values[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
