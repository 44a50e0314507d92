// Package testutil provides common test helpers for the n project.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// TempProject creates a directory tree depth levels deep under a fresh temp
// directory and returns (root, leaf). The tree is cleaned up automatically.
func TempProject(t *testing.T, depth int) (string, string) {
	t.Helper()

	root := t.TempDir()
	leaf := root
	for i := 0; i < depth; i++ {
		leaf = filepath.Join(leaf, "d"+strconv.Itoa(i))
	}
	if err := os.MkdirAll(leaf, 0755); err != nil {
		t.Fatalf("TempProject: mkdir failed: %v", err)
	}

	return root, leaf
}

// WriteLockFile writes an empty lock file with the given name in dir.
func WriteLockFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteLockFile: write failed: %v", err)
	}

	return path
}

// Ancestor returns the directory k levels above dir.
func Ancestor(dir string, k int) string {
	for i := 0; i < k; i++ {
		dir = filepath.Dir(dir)
	}
	return dir
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}
