package ports

// FileChecker answers file-existence questions. Resolution re-checks
// existence per lookup instead of caching, so edits during a development
// session are observed immediately.
type FileChecker interface {
	// Exists reports whether path names an existing regular file.
	Exists(path string) bool
}

// FileCheckerFunc adapts a plain function to the FileChecker interface.
type FileCheckerFunc func(path string) bool

// Exists implements FileChecker.
func (f FileCheckerFunc) Exists(path string) bool {
	return f(path)
}
