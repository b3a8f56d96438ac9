// Package gpu provides a cross-platform, hardware-accelerated command-buffer
// graphics and compute API on top of heterogeneous native backends (Vulkan,
// Direct3D 12, Metal, and a software rasterizer).
//
// This package wraps the lower-level hal/ and core/ packages into a
// backend-neutral, handle-based API: applications submit structured drawing
// and compute work through opaque handles and this library translates,
// synchronizes, and presents it.
//
// # Quick Start
//
// Import this package and a backend registration package:
//
//	import (
//	    "github.com/gogpu/gpu"
//	    _ "github.com/gogpu/gpu/hal/allbackends"
//	)
//
//	instance, err := gpu.CreateInstance(nil)
//	// ...
//
// # Resource Lifecycle
//
// All GPU resources must be explicitly released with Release().
// Resources are reference-counted internally. Using a released resource panics.
//
// # Backend Registration
//
// Backends are registered via blank imports:
//
//	_ "github.com/gogpu/gpu/hal/allbackends"  // all available backends
//	_ "github.com/gogpu/gpu/hal/vulkan"        // Vulkan only
//	_ "github.com/gogpu/gpu/hal/software"       // CPU reference backend
//
// # Thread Safety
//
// Instance, Adapter, and Device are safe for concurrent use.
// Encoders (CommandEncoder, RenderPassEncoder, ComputePassEncoder) are NOT thread-safe.
package gpu
