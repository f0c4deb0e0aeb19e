package patch

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Dialect identifies the textual shape of a configuration file.
type Dialect int

const (
	// DialectScript matches assignment syntax: key = "value" (.rb files).
	DialectScript Dialect = iota
	// DialectData matches indented key/value syntax: key: value (.yml files).
	DialectData
)

// ErrUnsupportedDialect indicates a target file whose suffix matches neither
// recognized dialect.
var ErrUnsupportedDialect = errors.New("unsupported config dialect")

// Resolve selects the dialect for path from its suffix alone.
// File contents are never inspected.
func Resolve(path string) (Dialect, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rb":
		return DialectScript, nil
	case ".yml", ".yaml":
		return DialectData, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedDialect, path)
}

func (d Dialect) String() string {
	switch d {
	case DialectScript:
		return "script"
	case DialectData:
		return "data"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// matcher locates the value token for key in d's syntax.
func (d Dialect) matcher(key string) *regexp.Regexp {
	switch d {
	case DialectScript:
		return scriptMatcher(key)
	default:
		return dataMatcher(key)
	}
}

// scriptMatcher matches the first assignment of the form
//
//	key = "value"
//
// at the start of a line, with tolerant spacing around "=". Group 2 is the
// quoted value token, which may not contain quotes, backslashes, or
// whitespace. The assignment syntax and quote characters around it are
// captured so a substitution preserves them byte for byte.
func scriptMatcher(key string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?m)^([ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*")([^"\\\s]*)(")`,
	)
}

// dataMatcher matches the first line of the form
//
//	key: value
//
// allowing leading indentation and whitespace after the colon. Group 2 is the
// value token: a run of non-whitespace that does not start with a comment
// marker. Indentation, the key, colon spacing, and any trailing content
// (including comments) are captured so a substitution preserves them.
func dataMatcher(key string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?m)^([ \t]*` + regexp.QuoteMeta(key) + `:[ \t]+)([^#\s]\S*)((?:[ \t].*)?)$`,
	)
}

// replaceFirst substitutes value for the token group of re's first match in
// text. It reports whether a match was found; on no match text is returned
// unchanged.
func replaceFirst(re *regexp.Regexp, text, value string) (string, bool) {
	m := re.FindStringSubmatchIndex(text)
	if m == nil {
		return text, false
	}
	// m[4]:m[5] bound the token capture group.
	return text[:m[4]] + value + text[m[5]:], true
}
