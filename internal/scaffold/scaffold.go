// Package scaffold creates and shuffles site content files: posts, pages,
// theme installs, and the isolate/integrate stash.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Slug lowercases title and reduces it to hyphen-separated word characters,
// suitable for a filename or URL segment.
func Slug(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// PostFileName returns the dated filename for a new post,
// e.g. "2026-08-30-hello-world.markdown".
func PostFileName(title, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", now.Format("2006-01-02"), Slug(title), ext)
}

// WritePost creates a post file at path with YAML front matter.
// Fails if the file already exists.
func WritePost(path, title string, now time.Time) error {
	content := fmt.Sprintf(`---
layout: post
title: %q
date: %s
comments: true
categories:
---

`, title, now.Format("2006-01-02 15:04"))
	return writeNew(path, content)
}

// WritePage creates a page file at path with YAML front matter.
// Fails if the file already exists.
func WritePage(path, title string, now time.Time) error {
	content := fmt.Sprintf(`---
layout: page
title: %q
date: %s
comments: true
sharing: true
footer: true
---

`, title, now.Format("2006-01-02 15:04"))
	return writeNew(path, content)
}

// writeNew writes content to path, creating parent directories and refusing
// to clobber an existing file.
func writeNew(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CopyDir recursively copies the tree rooted at src into dst, creating dst
// if needed. Existing files in dst are overwritten.
func CopyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", dst, err)
	}
	return out.Close()
}

// Isolate moves every post in postsDir whose filename does not contain match
// into stashDir, so a generate run only rebuilds the matching posts.
// It returns the names of the moved files.
func Isolate(postsDir, stashDir, match string) ([]string, error) {
	entries, err := os.ReadDir(postsDir)
	if err != nil {
		return nil, fmt.Errorf("reading posts directory: %w", err)
	}
	if err := os.MkdirAll(stashDir, 0755); err != nil {
		return nil, fmt.Errorf("creating stash directory: %w", err)
	}

	var moved []string
	for _, e := range entries {
		if e.IsDir() || strings.Contains(e.Name(), match) {
			continue
		}
		from := filepath.Join(postsDir, e.Name())
		to := filepath.Join(stashDir, e.Name())
		if err := os.Rename(from, to); err != nil {
			return moved, fmt.Errorf("stashing %s: %w", e.Name(), err)
		}
		moved = append(moved, e.Name())
	}
	return moved, nil
}

// Integrate moves every stashed post back into postsDir and returns the
// names of the moved files. A missing stash directory is not an error.
func Integrate(postsDir, stashDir string) ([]string, error) {
	entries, err := os.ReadDir(stashDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading stash directory: %w", err)
	}

	var moved []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		from := filepath.Join(stashDir, e.Name())
		to := filepath.Join(postsDir, e.Name())
		if err := os.Rename(from, to); err != nil {
			return moved, fmt.Errorf("restoring %s: %w", e.Name(), err)
		}
		moved = append(moved, e.Name())
	}
	return moved, nil
}
