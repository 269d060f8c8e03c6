package assets

import (
	"fmt"
	"io/fs"
)

type resourceKey struct {
	typ ResourceType
	id  ResourceID
}

// MemoryStore is a ResourceStore holding resources in memory, for generated
// code and tests. Add is not safe for concurrent use; Fetch is once filled.
type MemoryStore struct {
	entries map[resourceKey][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[resourceKey][]byte)}
}

// Add registers content under (typ, id) and returns the store for chaining.
func (s *MemoryStore) Add(typ ResourceType, id ResourceID, content []byte) *MemoryStore {
	s.entries[resourceKey{typ: typ, id: id}] = content
	return s
}

// Fetch returns a copy of the registered content.
func (s *MemoryStore) Fetch(id ResourceID, typ ResourceType) ([]byte, error) {
	content, ok := s.entries[resourceKey{typ: typ, id: id}]
	if !ok {
		return nil, newResourceError("FindResource", id, typ, fs.ErrNotExist)
	}
	return append([]byte(nil), content...), nil
}

// FSStore is a ResourceStore mapping identifiers to files of an fs.FS.
type FSStore struct {
	fsys  fs.FS
	paths map[resourceKey]string
}

// NewFSStore creates an FSStore over fsys with no registered resources.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys, paths: make(map[resourceKey]string)}
}

// Add registers the file at path under (typ, id) and returns the store for chaining.
func (s *FSStore) Add(typ ResourceType, id ResourceID, path string) *FSStore {
	s.paths[resourceKey{typ: typ, id: id}] = path
	return s
}

// Fetch reads the file registered under (typ, id).
func (s *FSStore) Fetch(id ResourceID, typ ResourceType) ([]byte, error) {
	path, ok := s.paths[resourceKey{typ: typ, id: id}]
	if !ok {
		return nil, newResourceError("FindResource", id, typ, fs.ErrNotExist)
	}

	content, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, newResourceError("LoadResource", id, typ, fmt.Errorf("reading %s: %w", path, err))
	}
	return content, nil
}

// Compile-time interface checks.
var (
	_ ResourceStore = (*MemoryStore)(nil)
	_ ResourceStore = (*FSStore)(nil)
)
