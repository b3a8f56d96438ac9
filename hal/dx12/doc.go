// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package dx12 implements the HAL backend for Direct3D 12 on Windows.
//
// The backend is pure Go: DXGI and D3D12 are driven through COM vtable
// calls over syscall, with no cgo. Shader modules arrive as SPIR-V and
// are cross-compiled to HLSL before DXC/FXC compilation.
package dx12
