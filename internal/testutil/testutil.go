// Package testutil provides test helpers for sedvet tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory,
// creating parent directories as needed. It returns the file path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteLibrary lays out a SED library under a fresh temp directory and returns
// its root. files maps slash-separated relative paths to content. The three
// standard subtrees always exist, even when files puts nothing in them.
func WriteLibrary(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for _, sub := range []string{"starSED", "galaxySED", "agnSED"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", sub, err)
		}
	}
	for name, content := range files {
		WriteFile(t, root, filepath.FromSlash(name), content)
	}
	return root
}
