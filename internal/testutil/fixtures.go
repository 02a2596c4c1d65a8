// Package testutil provides filesystem fixtures for plugin runtime tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteExtensionFile writes content at
// root/author/extensionID/frontend/rel and returns the absolute path.
func WriteExtensionFile(t *testing.T, root, author, extensionID, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, author, extensionID, "frontend", filepath.FromSlash(rel))
	writeFile(t, path, content)
	return path
}

// WriteHostFile writes content at hostRoot/rel and returns the absolute path.
func WriteHostFile(t *testing.T, hostRoot, rel, content string) string {
	t.Helper()
	path := filepath.Join(hostRoot, filepath.FromSlash(rel))
	writeFile(t, path, content)
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
