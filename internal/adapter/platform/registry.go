package platform

import (
	"fmt"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// Registry dispatches to a platform adapter by the draft's platform field.
// It lets a single generic publisher serve every platform instead of one
// state-machine copy per platform.
type Registry struct {
	adapters map[domain.Platform]port.PlatformAdapter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[domain.Platform]port.PlatformAdapter)}
}

// Register binds an adapter to a platform key, replacing any previous one.
func (r *Registry) Register(p domain.Platform, a port.PlatformAdapter) {
	r.adapters[p] = a
}

// Adapter returns the adapter registered for p.
func (r *Registry) Adapter(p domain.Platform) (port.PlatformAdapter, error) {
	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for platform %q", p)
	}
	return a, nil
}
