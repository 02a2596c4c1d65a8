package entities

// ScriptExtensions are the source extensions the runtime treats as
// script-like: these files go through the code transformer, and these
// suffixes are stripped during specifier normalization and probed during
// relative resolution.
var ScriptExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".mjs"}

// IsScriptPath reports whether path has a script-like extension.
func IsScriptPath(path string) bool {
	for _, ext := range ScriptExtensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}
