package assets

// Loader defines the contract for fetching the raw bytes of a referenced file.
// The name is the filename captured from the document (href or src value).
type Loader interface {
	// Load returns the content for name.
	// Returns ErrNotFound, ErrReadFailure, or ErrPlatformResource on failure.
	Load(name string) ([]byte, error)
}

// DirOf returns the directory part of path, including the trailing separator.
// Both '/' and '\' are separators. Returns "" if path has no separator.
func DirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[:i+1]
		}
	}
	return ""
}
