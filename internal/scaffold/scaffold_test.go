package scaffold

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"Ünïcode Tïtle", "ünïcode-tïtle"},
		{"100% Done", "100-done"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPostFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	got := PostFileName("Hello World", "markdown", now)
	if want := "2026-08-30-hello-world.markdown"; got != want {
		t.Errorf("PostFileName = %q, want %q", got, want)
	}
}

func TestWritePost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_posts", "2026-08-30-hello.markdown")
	now := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)

	if err := WritePost(path, "Hello", now); err != nil {
		t.Fatalf("WritePost: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"layout: post",
		`title: "Hello"`,
		"date: 2026-08-30 09:30",
		"comments: true",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("post missing %q:\n%s", want, content)
		}
	}
	if !strings.HasPrefix(content, "---\n") {
		t.Error("post does not start with front matter delimiter")
	}

	// Refuses to clobber.
	if err := WritePost(path, "Hello", now); err == nil {
		t.Error("WritePost overwrote an existing file")
	}
}

func TestWritePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "about", "index.markdown")

	if err := WritePage(path, "about", time.Now()); err != nil {
		t.Fatalf("WritePage: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "layout: page") {
		t.Errorf("page missing layout line:\n%s", data)
	}
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "dst")

	files := map[string]string{
		"index.html":            "<html>",
		"css/style.css":         "body {}",
		"_posts/2026-01-01.md":  "post",
		"_posts/deep/nested.md": "nested",
	}
	for name, content := range files {
		path := filepath.Join(src, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir: %v", err)
	}

	for name, content := range files {
		data, err := os.ReadFile(filepath.Join(dst, name))
		if err != nil {
			t.Errorf("missing copied file %s: %v", name, err)
			continue
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", name, data, content)
		}
	}
}

func TestIsolateAndIntegrate(t *testing.T) {
	posts := t.TempDir()
	stash := filepath.Join(t.TempDir(), "_stash")

	names := []string{
		"2026-01-01-keep-me.markdown",
		"2026-01-02-stash-me.markdown",
		"2026-01-03-stash-me-too.markdown",
	}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(posts, n), []byte("post"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	moved, err := Isolate(posts, stash, "keep-me")
	if err != nil {
		t.Fatalf("Isolate: %v", err)
	}
	sort.Strings(moved)
	want := []string{"2026-01-02-stash-me.markdown", "2026-01-03-stash-me-too.markdown"}
	if !reflect.DeepEqual(moved, want) {
		t.Errorf("Isolate moved %v, want %v", moved, want)
	}

	if _, err := os.Stat(filepath.Join(posts, "2026-01-01-keep-me.markdown")); err != nil {
		t.Error("matching post was stashed")
	}
	if _, err := os.Stat(filepath.Join(stash, "2026-01-02-stash-me.markdown")); err != nil {
		t.Error("non-matching post was not stashed")
	}

	restored, err := Integrate(posts, stash)
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	if len(restored) != 2 {
		t.Errorf("Integrate restored %v, want 2 files", restored)
	}
	entries, err := os.ReadDir(posts)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("posts dir has %d entries after integrate, want 3", len(entries))
	}
}

func TestIntegrateMissingStash(t *testing.T) {
	moved, err := Integrate(t.TempDir(), filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("Integrate with missing stash: %v", err)
	}
	if len(moved) != 0 {
		t.Errorf("moved = %v, want none", moved)
	}
}
