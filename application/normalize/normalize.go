// Package normalize canonicalizes import specifiers for comparison.
package normalize

import (
	"strings"

	"github.com/chronolens/pluginhost/domain/entities"
)

// Specifier returns the canonical comparison form of a raw import
// specifier: separators unified to forward slashes and a known source
// extension stripped. Pure and total; it never touches the disk and is
// used only for comparisons, never as a path.
func Specifier(raw string) string {
	s := strings.ReplaceAll(raw, "\\", "/")
	for _, ext := range entities.ScriptExtensions {
		if strings.HasSuffix(s, ext) {
			return strings.TrimSuffix(s, ext)
		}
	}
	return s
}
