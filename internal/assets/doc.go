// Package assets resolves the content of referenced stylesheets and scripts.
//
// # Loader Architecture
//
// Every backend satisfies the same Loader contract:
//
//	Loader (interface)
//	    │
//	    ├── FilesystemLoader  - base directory on disk, plain string concatenation
//	    ├── FSLoader          - directory inside an fs.FS (embed.FS, fstest.MapFS)
//	    └── ResourceLoader    - ResourceTable lookup, then ResourceStore fetch
//
// ResourceStore abstracts a compiled-in resource subsystem. MemoryStore and
// FSStore work everywhere; ModuleStore reads PE resources of the running
// executable and only exists on Windows.
//
// # Errors
//
// A reference that cannot be opened or is absent from the table wraps
// ErrNotFound. A path that opens but cannot be read wraps ErrReadFailure.
// Store failures wrap ErrPlatformResource and carry a *ResourceError.
//
// Loaders never transform the bytes they return.
package assets
