// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vulkan implements the HAL backend for Vulkan.
//
// The backend is pure Go: entry points are resolved at runtime through
// goffi from vulkan-1.dll (Windows), libvulkan.so.1 (Linux), or MoltenVK
// (macOS), with no cgo. The translation maps the HAL contract onto
// VkInstance/VkPhysicalDevice/VkDevice plus an explicit pool-based memory
// allocator (see the memory subpackage), since Vulkan leaves allocation
// entirely to the application.
//
// Surface integration currently covers VK_KHR_win32_surface; the X11 and
// Metal surface extensions have binding tables but no wired constructor.
package vulkan
