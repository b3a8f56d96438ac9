// Package core implements the device-neutral resource runtime between the
// public API in package gpu and the hardware abstraction layer in package
// hal.
//
// Responsibilities:
//
//   - Adapter discovery (Instance) across the registered backend
//     providers, with the software rasterizer as the last-resort fallback
//     and a HAL-less mock adapter when no backend is importable at all.
//   - Device lifecycle (Device) over a Snatchable hal.Device, so
//     destruction tears the native device down exactly once while
//     concurrent resource accesses observe a clean nil.
//   - Buffer containers (Buffer) wrapping a ring of backing hal.Buffer
//     instances; cycling gives callers write access to a buffer still
//     referenced by in-flight command buffers without a fence wait.
//   - Command recording (CoreCommandEncoder and the pass encoders) with a
//     status state machine gating which calls are legal between pass
//     begin/end brackets.
//   - Error scopes (PushErrorScope/PopErrorScope) capturing validation
//     and out-of-memory failures per device.
//   - Leak diagnostics (SetDebugMode/ReportLeaks) for debug builds.
//
// Architecture:
//
//	gpu/    -> public handles, tracking, cycling policy, submission
//	core/   -> validation + lifecycle + recording state (this package)
//	hal/    -> backend translation contract
//
// Thread safety: all types in this package are safe for concurrent use
// unless explicitly documented otherwise.
package core
