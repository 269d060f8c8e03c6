package assets

import (
	"fmt"
	"io"
	"io/fs"
	"path"
)

// FSLoader reads referenced files from a directory inside an fs.FS,
// typically an embed.FS compiled into the binary.
// Implements Loader interface.
type FSLoader struct {
	fsys fs.FS
	dir  string
}

// NewFSLoader creates an FSLoader rooted at dir ("" or "." for the FS root).
func NewFSLoader(fsys fs.FS, dir string) *FSLoader {
	return &FSLoader{fsys: fsys, dir: dir}
}

// Load reads the whole content of dir/name.
// Names that do not form a valid fs path (for example escaping the FS root)
// are reported as ErrNotFound.
func (l *FSLoader) Load(name string) ([]byte, error) {
	p := path.Join(l.dir, name)
	if !fs.ValidPath(p) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, &fs.PathError{Op: "open", Path: p, Err: fs.ErrInvalid})
	}

	file, err := l.fsys.Open(p)
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

// Compile-time interface check.
var _ Loader = (*FSLoader)(nil)
