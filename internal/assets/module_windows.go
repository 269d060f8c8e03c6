//go:build windows

package assets

import (
	"golang.org/x/sys/windows"
)

// ModuleStore reads resources compiled into the running executable.
type ModuleStore struct {
	module windows.Handle
}

// NewModuleStore opens the resource section of the current executable.
// The returned error is a *ResourceError for the GetModuleHandleEx step.
func NewModuleStore() (*ModuleStore, error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &module); err != nil {
		return nil, newResourceError("GetModuleHandleEx", 0, 0, err)
	}
	return &ModuleStore{module: module}, nil
}

// Fetch locates, loads and copies the resource bytes.
// LoadResourceData covers the LoadResource, LockResource and SizeofResource steps.
func (s *ModuleStore) Fetch(id ResourceID, typ ResourceType) ([]byte, error) {
	handle, err := windows.FindResource(s.module, windows.ResourceID(id), windows.ResourceID(typ))
	if err != nil {
		return nil, newResourceError("FindResource", id, typ, err)
	}

	data, err := windows.LoadResourceData(s.module, handle)
	if err != nil {
		return nil, newResourceError("LoadResource", id, typ, err)
	}

	// data aliases the mapped image; callers own the returned slice
	return append([]byte(nil), data...), nil
}

// Compile-time interface check.
var _ ResourceStore = (*ModuleStore)(nil)
