// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package metal implements the HAL backend for Metal on macOS and iOS.
//
// The backend is pure Go: Metal objects are driven through Objective-C
// message sends (objc_msgSend) resolved at runtime, with no cgo. Shader
// modules arrive as SPIR-V and are cross-compiled to MSL before
// MTLLibrary compilation.
package metal
