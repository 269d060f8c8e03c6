//go:build windows

package inlinehtml

import "github.com/alnah/go-inlinehtml/internal/assets"

// ModuleStore reads resources compiled into the running executable
// (RT_HTML for the root document, RT_RCDATA for references).
type ModuleStore = assets.ModuleStore

// NewModuleStore opens the resource section of the current executable.
func NewModuleStore() (*ModuleStore, error) {
	return assets.NewModuleStore()
}
