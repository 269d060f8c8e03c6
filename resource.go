package inlinehtml

import (
	"io/fs"

	"github.com/alnah/go-inlinehtml/internal/assets"
)

// Resource types and stores for InlineResource.
type (
	// ResourceID is an opaque numeric resource identifier.
	ResourceID = assets.ResourceID

	// ResourceType is the resource class, numbered as the Windows RT_* constants.
	ResourceType = assets.ResourceType

	// ResourceTable maps each referenced filename to its ResourceID.
	// Build it before the call; it is only read.
	ResourceTable = assets.ResourceTable

	// ResourceStore fetches resource bytes by identifier and type.
	// Implement it to plug in another compiled-resource subsystem.
	ResourceStore = assets.ResourceStore

	// ResourceError describes a failed resource subsystem step and carries
	// the platform error code. It matches ErrPlatformResource.
	ResourceError = assets.ResourceError

	// MemoryStore holds resources in memory.
	MemoryStore = assets.MemoryStore

	// FSStore maps resource identifiers to files of an fs.FS.
	FSStore = assets.FSStore
)

// Resource types fetched by InlineResource.
const (
	TypeHTML   = assets.TypeHTML   // root document
	TypeRCData = assets.TypeRCData // referenced stylesheets and scripts
)

// NewMemoryStore creates an empty MemoryStore. Fill it with Add before use.
func NewMemoryStore() *MemoryStore {
	return assets.NewMemoryStore()
}

// NewFSStore creates an FSStore over fsys. Register files with Add before use.
func NewFSStore(fsys fs.FS) *FSStore {
	return assets.NewFSStore(fsys)
}
