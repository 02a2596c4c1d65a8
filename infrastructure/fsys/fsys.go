// Package fsys provides the filesystem adapters for the plugin runtime:
// the real file-existence probe and the per-platform directory layout.
package fsys

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chronolens/pluginhost/domain/ports"
)

// OSChecker implements ports.FileChecker against the real filesystem.
type OSChecker struct{}

// Exists reports whether path names an existing regular file.
func (OSChecker) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

var _ ports.FileChecker = OSChecker{}

// appDirName is the host application's directory under the user's
// conventional configuration root.
const appDirName = "Chronolens"

// ExtensionsRoot returns the extensions installation root: the
// "extensions" directory inside the host application's per-platform
// application-data directory. The directory is not created here.
func ExtensionsRoot() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config directory: %w", err)
	}
	return filepath.Join(base, appDirName, "extensions"), nil
}
