// Package hal defines the backend translation contract that sits between
// the device-neutral command-buffer runtime (package gpu) and a concrete
// GPU backend.
//
// # Architecture
//
//  1. Backend - factory for devices (entry point, one per backend variant)
//  2. Device - resource creation, command encoding, submission, present
//  3. CommandEncoder - one per command-buffer acquisition; records a
//     single command buffer's render/compute/copy passes
//
// # Design principles
//
// The HAL prioritizes portability over safety: it performs no pass-phase
// or binding validation itself. Package gpu's pass state machine and
// shadow tables validate and stage every call before it reaches a
// CommandEncoder method, so a compliant backend may assume every call it
// receives is already legal.
//
// # Resource handles
//
// Buffers, textures, samplers, shaders, and pipelines are represented as
// opaque Native* handles (see resource.go); package gpu never inspects
// them.
//
// # Backend registration
//
// Backends register themselves in an init() via RegisterBackend or
// RegisterBackendFactory:
//
//	backend, ok := hal.GetBackend(types.Vulkan)
//	if !ok {
//		return fmt.Errorf("vulkan backend not available")
//	}
//	device, err := backend.CreateDevice(desc)
//
// # Thread safety
//
// Backend registration (RegisterBackend, GetBackend, CreateBackend) is
// thread-safe. Device and CommandEncoder methods follow the concurrency
// rules of the runtime above them: any Device method may be called from
// any thread, but a single CommandEncoder is thread-affine.
package hal
