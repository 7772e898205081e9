// Package testutil provides helpers for testing iniq against real files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteINI writes content to name under dir and returns the full path.
func WriteINI(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// TempINI writes content to a config file in a fresh temp directory and
// returns its path. Cleanup is handled by t.TempDir.
func TempINI(t *testing.T, content string) string {
	t.Helper()
	return WriteINI(t, t.TempDir(), "config.ini", content)
}
