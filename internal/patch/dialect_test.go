package patch

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path    string
		want    Dialect
		wantErr bool
	}{
		{"config.rb", DialectScript, false},
		{"deep/nested/config.rb", DialectScript, false},
		{"_config.yml", DialectData, false},
		{"_config.yaml", DialectData, false},
		{"CONFIG.RB", DialectScript, false},
		{"config.toml", 0, true},
		{"Rakefile", 0, true},
		{"config", 0, true},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedDialect) {
				t.Errorf("Resolve(%q) error = %v, want ErrUnsupportedDialect", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q) unexpected error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestScriptMatcherSpacingAndQuotes(t *testing.T) {
	text := `http_path      = "/blog"` + "\n"

	got, ok := replaceFirst(scriptMatcher("http_path"), text, "/v2")
	if !ok {
		t.Fatal("matcher missed a well-formed assignment")
	}
	if want := `http_path      = "/v2"` + "\n"; got != want {
		t.Errorf("replaced text = %q, want %q (spacing preserved)", got, want)
	}
}

func TestScriptMatcherRejectsSubstringKey(t *testing.T) {
	text := `http_path = "/blog"` + "\n"

	if _, ok := replaceFirst(scriptMatcher("path"), text, "/v2"); ok {
		t.Error("matcher for \"path\" matched the http_path assignment")
	}
}

func TestScriptMatcherRejectsUnquotedValue(t *testing.T) {
	text := "http_path = /blog\n"

	if _, ok := replaceFirst(scriptMatcher("http_path"), text, "/v2"); ok {
		t.Error("matcher matched an unquoted assignment")
	}
}

func TestDataMatcherIndentAndTrailing(t *testing.T) {
	text := "  public_dir: public  # generated output\n"

	got, ok := replaceFirst(dataMatcher("public_dir"), text, "public/v2")
	if !ok {
		t.Fatal("matcher missed an indented key line")
	}
	if want := "  public_dir: public/v2  # generated output\n"; got != want {
		t.Errorf("replaced text = %q, want %q", got, want)
	}
}

func TestDataMatcherSkipsCommentedLine(t *testing.T) {
	text := "# destination: public\n"

	if _, ok := replaceFirst(dataMatcher("destination"), text, "public/v2"); ok {
		t.Error("matcher matched a commented-out key")
	}
}

func TestDataMatcherSkipsEmptyValue(t *testing.T) {
	text := "destination:\n"

	if _, ok := replaceFirst(dataMatcher("destination"), text, "public"); ok {
		t.Error("matcher matched a key with no value token")
	}
}

func TestDataMatcherRejectsSubstringKey(t *testing.T) {
	text := "public_dir: public\n"

	if _, ok := replaceFirst(dataMatcher("dir"), text, "other"); ok {
		t.Error("matcher for \"dir\" matched the public_dir line")
	}
}
