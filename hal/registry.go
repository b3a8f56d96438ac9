package hal

import (
	"sync"

	"github.com/gogpu/gpu/types"
)

var (
	backendsMu sync.RWMutex
	backends   = make(map[types.Backend]Backend)
)

// RegisterBackend registers a backend implementation. Typically called
// from a backend package's init(). Registering the same variant twice
// replaces the previous registration.
func RegisterBackend(b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[b.Variant()] = b
}

// GetBackend returns a registered backend by variant.
func GetBackend(variant types.Backend) (Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[variant]
	return b, ok
}

// AvailableBackends returns all registered backend variants, in no
// particular order.
func AvailableBackends() []types.Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	out := make([]types.Backend, 0, len(backends))
	for v := range backends {
		out = append(out, v)
	}
	return out
}
