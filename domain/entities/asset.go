package entities

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FrontendSubdir is the directory inside an installed extension that holds
// its servable frontend sources.
const FrontendSubdir = "frontend"

// validate is a package-level singleton; constructing a validator per call
// is expensive and the instance caches struct metadata.
var validate = validator.New()

// AssetRequest identifies one extension file by the segments captured from
// the request URL. RelativePath may contain further path segments.
type AssetRequest struct {
	Author       string `validate:"required,excludesall=0x2F0x5C"`
	ExtensionID  string `validate:"required,excludesall=0x2F0x5C"`
	RelativePath string `validate:"required"`
}

// Validate checks the structural rules: author and extension id are single
// path segments, and the relative path cannot traverse out of the extension
// directory.
func (a AssetRequest) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid asset request: %w", err)
	}
	for _, seg := range strings.Split(a.RelativePath, "/") {
		if seg == ".." {
			return fmt.Errorf("invalid asset request: path %q traverses out of the extension", a.RelativePath)
		}
	}
	return nil
}

// DiskPath maps the request under the extensions installation root. The
// result is guaranteed to stay inside root.
func (a AssetRequest) DiskPath(root string) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	joined := filepath.Join(root, a.Author, a.ExtensionID, FrontendSubdir, filepath.FromSlash(a.RelativePath))
	cleanRoot := filepath.Clean(root)
	if joined != cleanRoot && !strings.HasPrefix(joined, cleanRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("asset path %q escapes extensions root", joined)
	}
	return joined, nil
}

// RootRelative returns the asset's path relative to the extensions root,
// in forward-slash form, for use in virtual identifiers.
func (a AssetRequest) RootRelative() string {
	return strings.Join([]string{a.Author, a.ExtensionID, FrontendSubdir, a.RelativePath}, "/")
}
