package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader reads referenced files relative to a base directory.
// Implements Loader interface.
type FilesystemLoader struct {
	baseDir string
	root    string // resolved baseDir, set only in strict mode
}

// NewFilesystemLoader creates a FilesystemLoader. baseDir is prepended to every
// name verbatim, so it must be empty or end with a separator (see DirOf).
func NewFilesystemLoader(baseDir string) *FilesystemLoader {
	return &FilesystemLoader{baseDir: baseDir}
}

// NewStrictFilesystemLoader creates a FilesystemLoader that refuses names
// resolving outside baseDir, following symlinks.
// Returns ErrInvalidBasePath if baseDir cannot be resolved to a directory.
func NewStrictFilesystemLoader(baseDir string) (*FilesystemLoader, error) {
	dir := baseDir
	if dir == "" {
		dir = "."
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path for consistent comparisons
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{baseDir: baseDir, root: absPath}, nil
}

// Load reads the whole content of baseDir+name.
func (f *FilesystemLoader) Load(name string) ([]byte, error) {
	path := f.baseDir + name

	if f.root != "" {
		if err := f.verifyPathContainment(path); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path) // #nosec G304 -- path comes from the document being inlined
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	return content, nil
}

// verifyPathContainment ensures the resolved file path is within root.
// Symlinks are resolved so a link pointing outside root is rejected too.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve %q", ErrPathTraversal, filePath)
	}

	// A missing file is checked through its nearest existing ancestor, so
	// root and the path agree on symlinks and the open reports ErrNotFound.
	absFilePath = resolveExisting(absFilePath)

	// Separator suffix prevents /base/path matching /base/pathevil
	if !strings.HasPrefix(absFilePath, f.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes %s", ErrPathTraversal, filePath, f.root)
	}

	return nil
}

// resolveExisting resolves symlinks in the longest existing prefix of the
// absolute path p and rejoins the missing tail.
func resolveExisting(p string) string {
	var tail []string
	for {
		if realPath, err := filepath.EvalSymlinks(p); err == nil {
			return filepath.Join(append([]string{realPath}, tail...)...)
		}
		parent := filepath.Dir(p)
		if parent == p {
			return filepath.Join(append([]string{p}, tail...)...)
		}
		tail = append([]string{filepath.Base(p)}, tail...)
		p = parent
	}
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
