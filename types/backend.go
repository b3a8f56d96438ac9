package types

import "fmt"

// Backend identifies a graphics backend implementation.
type Backend uint8

const (
	// BackendInvalid represents no backend (invalid state).
	BackendInvalid Backend = iota
	// BackendVulkan targets a Vulkan-class native API.
	BackendVulkan
	// BackendD3D targets a Direct3D-class native API.
	BackendD3D
	// BackendMetal targets a Metal-class native API.
	BackendMetal
	// BackendSoftware is the CPU reference backend.
	BackendSoftware
	// BackendGL targets an OpenGL/OpenGL ES-class native API.
	BackendGL
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendInvalid:
		return "Invalid"
	case BackendVulkan:
		return "Vulkan"
	case BackendD3D:
		return "D3D"
	case BackendMetal:
		return "Metal"
	case BackendSoftware:
		return "Software"
	case BackendGL:
		return "GL"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// Backends is a preferred-backend bitmask.
type Backends uint8

const (
	BackendsVulkan   Backends = 1 << BackendVulkan
	BackendsD3D      Backends = 1 << BackendD3D
	BackendsMetal    Backends = 1 << BackendMetal
	BackendsSoftware Backends = 1 << BackendSoftware
	BackendsGL       Backends = 1 << BackendGL

	// BackendsAll is the "don't know, pick anything" hint. It is treated
	// as a hint rather than a requirement: native backends are tried
	// first and the software fallback last, so BackendsAll never forces
	// software when a native backend is present.
	BackendsAll = BackendsVulkan | BackendsD3D | BackendsMetal | BackendsGL | BackendsSoftware
)

// Contains reports whether the bitmask includes the given backend.
func (b Backends) Contains(backend Backend) bool {
	if backend == BackendInvalid {
		return false
	}
	return b&(1<<backend) != 0
}

// InstanceFlags controls instance behavior.
type InstanceFlags uint8

const (
	// InstanceFlagsDebug enables backend validation/debug layers when
	// available.
	InstanceFlagsDebug InstanceFlags = 1 << iota
)
