// Package errors provides domain-specific error types for the plugin runtime.
// All types support unwrapping via errors.As() and errors.Is().
package errors

import (
	"fmt"

	"github.com/chronolens/pluginhost/domain/entities"
)

// AssetNotFoundError reports a requested extension file that is absent under
// the extensions root. It carries the identifying segments so the response
// body can name exactly what was looked up.
type AssetNotFoundError struct {
	Author        string
	ExtensionID   string
	RelativePath  string
	AttemptedPath string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("extension asset not found: author=%s extension=%s path=%s (looked in %s)",
		e.Author, e.ExtensionID, e.RelativePath, e.AttemptedPath)
}

// TransformError reports a failed code transformation. The code server
// recovers from it by serving the raw file.
type TransformError struct {
	ID  entities.VirtualModuleID
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform failed for %s: %v", e.ID, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// UnknownModuleError reports a virtual identifier with no registration in
// the current session.
type UnknownModuleError struct {
	ID entities.VirtualModuleID
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown virtual module: %s", e.ID)
}
