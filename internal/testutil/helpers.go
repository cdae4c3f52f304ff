package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// WriteTempFile writes content to a file inside a test temp dir and returns
// its path. The file is cleaned up with the test's temp dir.
func WriteTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", name, err)
	}
	return path
}

// RepeatToLength repeats pattern until the result holds exactly n bytes.
// Handy for pushing samples past the heuristic length thresholds without
// spelling out kilobytes of fixture data.
func RepeatToLength(pattern []byte, n int) []byte {
	if len(pattern) == 0 || n <= 0 {
		return nil
	}
	return bytes.Repeat(pattern, n/len(pattern)+1)[:n]
}
