// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "github.com/gogpu/gpu/types"

// BackendFactory lazily constructs a backend, allowing probing without
// paying the cost (or risk) of eager initialization.
type BackendFactory func() (Backend, error)

// RegisterBackendFactory registers a lazy factory for a backend variant.
// Preferred over RegisterBackend for backends whose initialization can
// fail (missing drivers).
func RegisterBackendFactory(variant types.Backend, factory BackendFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	registeredFactories[variant] = factory
}

var registeredFactories = make(map[types.Backend]BackendFactory)

// CreateBackend instantiates a backend via its registered factory.
func CreateBackend(variant types.Backend) (Backend, error) {
	backendsMu.RLock()
	factory, ok := registeredFactories[variant]
	backendsMu.RUnlock()
	if !ok {
		if b, ok := GetBackend(variant); ok {
			return b, nil
		}
		return nil, ErrBackendNotFound
	}
	return factory()
}

// SelectBestBackend picks the most capable available backend among those
// requested by mask, trying native backends before falling back to the
// software reference backend. types.BackendsAll is a hint, not a
// requirement — it is treated like requesting every
// native backend.
func SelectBestBackend(mask types.Backends) (Backend, error) {
	priority := []types.Backend{
		types.BackendVulkan,
		types.BackendMetal,
		types.BackendD3D,
		types.BackendGL,
		types.BackendSoftware,
	}

	for _, variant := range priority {
		if mask != types.BackendsAll && !mask.Contains(variant) {
			continue
		}
		if b, ok := GetBackend(variant); ok {
			return b, nil
		}
		backendsMu.RLock()
		factory, hasFactory := registeredFactories[variant]
		backendsMu.RUnlock()
		if hasFactory {
			if b, err := factory(); err == nil {
				RegisterBackend(b)
				return b, nil
			}
		}
	}
	return nil, ErrBackendNotFound
}
