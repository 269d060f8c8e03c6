package assets

import (
	"errors"
	"fmt"
	"syscall"
)

// ResourceID is an opaque numeric resource identifier (MAKEINTRESOURCE range).
type ResourceID uint16

// ResourceType selects the resource class an identifier belongs to.
type ResourceType uint16

// Resource types used by the inliner, numbered as the Windows RT_* constants.
const (
	TypeRCData ResourceType = 10 // referenced stylesheets and scripts
	TypeHTML   ResourceType = 23 // the root document
)

// String returns the RT_* name of the type.
func (t ResourceType) String() string {
	switch t {
	case TypeRCData:
		return "RT_RCDATA"
	case TypeHTML:
		return "RT_HTML"
	default:
		return fmt.Sprintf("type(%d)", uint16(t))
	}
}

// ResourceTable maps a referenced filename to its resource identifier.
// It is built by the caller and only read during inlining.
type ResourceTable map[string]ResourceID

// Lookup returns the identifier for name, or ErrNotFound.
func (t ResourceTable) Lookup(name string) (ResourceID, error) {
	id, ok := t[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not in the resource table", ErrNotFound, name)
	}
	return id, nil
}

// ResourceStore fetches resource bytes from a compiled-resource subsystem.
type ResourceStore interface {
	// Fetch returns the bytes of resource id of type typ.
	// Failures must satisfy errors.Is(err, ErrPlatformResource).
	Fetch(id ResourceID, typ ResourceType) ([]byte, error)
}

// ResourceError describes a failed step of the resource subsystem.
type ResourceError struct {
	Op   string // failing step, e.g. "FindResource"
	ID   ResourceID
	Type ResourceType
	Code uint32 // platform error code, 0 when the platform reported none
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s %s %d: code %d: %v", e.Op, e.Type, e.ID, e.Code, e.Err)
	}
	return fmt.Sprintf("%s %s %d: %v", e.Op, e.Type, e.ID, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is reports ResourceError as an ErrPlatformResource.
func (e *ResourceError) Is(target error) bool {
	return target == ErrPlatformResource
}

// newResourceError builds a ResourceError, extracting the errno when present.
func newResourceError(op string, id ResourceID, typ ResourceType, err error) *ResourceError {
	re := &ResourceError{Op: op, ID: id, Type: typ, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		re.Code = uint32(errno)
	}
	return re
}

// ResourceLoader resolves filenames through a ResourceTable and fetches the
// bytes from a ResourceStore as TypeRCData.
// Implements Loader interface.
type ResourceLoader struct {
	table ResourceTable
	store ResourceStore
}

// NewResourceLoader creates a ResourceLoader.
func NewResourceLoader(table ResourceTable, store ResourceStore) *ResourceLoader {
	return &ResourceLoader{table: table, store: store}
}

// Load looks name up in the table and fetches the resource.
func (r *ResourceLoader) Load(name string) ([]byte, error) {
	id, err := r.table.Lookup(name)
	if err != nil {
		return nil, err
	}

	content, err := r.store.Fetch(id, TypeRCData)
	if err != nil {
		if errors.Is(err, ErrPlatformResource) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPlatformResource, err)
	}

	return content, nil
}

// Compile-time interface check.
var _ Loader = (*ResourceLoader)(nil)
