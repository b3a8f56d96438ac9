package hal

import "errors"

// Sentinel errors backing the error taxonomy: BackendUnavailable,
// AllocationFailed, CompilationFailed, UnsupportedFormat/Composition/
// PresentMode, InvalidUsage, IncompatibleShaderFormat, GpuTimeout/
// DeviceLost. The public gpu package never returns these directly — it
// logs them and surfaces a null handle, false, or a silently-dropped
// command, per the non-throwing propagation policy.
var (
	// ErrBackendNotFound indicates the requested backend is not
	// registered or its runtime/drivers are unavailable.
	ErrBackendNotFound = errors.New("hal: backend not found")

	// ErrAllocationFailed indicates a resource could not be created,
	// typically because the backend has exhausted memory.
	ErrAllocationFailed = errors.New("hal: allocation failed")

	// ErrCompilationFailed indicates a shader or pipeline failed to
	// compile.
	ErrCompilationFailed = errors.New("hal: compilation failed")

	// ErrUnsupportedFormat indicates a texture format/usage/dimension
	// combination the backend does not support.
	ErrUnsupportedFormat = errors.New("hal: unsupported format")

	// ErrUnsupportedComposition indicates a swapchain composition the
	// backend cannot present.
	ErrUnsupportedComposition = errors.New("hal: unsupported swapchain composition")

	// ErrUnsupportedPresentMode indicates a present mode the backend
	// cannot honor.
	ErrUnsupportedPresentMode = errors.New("hal: unsupported present mode")

	// ErrInvalidUsage indicates an illegal usage-flag combination or a
	// call made in the wrong pass phase.
	ErrInvalidUsage = errors.New("hal: invalid usage")

	// ErrIncompatibleShaderFormat indicates the shader bytecode format is
	// not one this backend consumes.
	ErrIncompatibleShaderFormat = errors.New("hal: incompatible shader format")

	// ErrDeviceLost indicates the backend reported an unrecoverable
	// device loss; surfaced through a fence that never signals.
	ErrDeviceLost = errors.New("hal: device lost")

	// ErrZeroArea indicates a swapchain configure/claim was attempted
	// against a window with zero width or height.
	ErrZeroArea = errors.New("hal: surface width and height must be non-zero")

	// ErrDeviceOutOfMemory indicates the backend could not satisfy an
	// allocation because the device itself is out of memory, as opposed
	// to ErrAllocationFailed's broader host-side failure.
	ErrDeviceOutOfMemory = errors.New("hal: device out of memory")

	// ErrSurfaceLost indicates a surface's underlying window or presentation
	// target has been destroyed and can no longer be configured or acquired.
	ErrSurfaceLost = errors.New("hal: surface lost")

	// ErrSurfaceOutdated indicates a surface must be reconfigured (typically
	// after a resize) before textures can be acquired from it again.
	ErrSurfaceOutdated = errors.New("hal: surface outdated, reconfigure required")

	// ErrTimeout indicates a blocking wait (fence wait, texture acquire)
	// did not complete within its deadline.
	ErrTimeout = errors.New("hal: operation timed out")

	// ErrNotReady indicates a non-blocking acquire found no texture
	// available yet; the caller should retry.
	ErrNotReady = errors.New("hal: not ready")
)
