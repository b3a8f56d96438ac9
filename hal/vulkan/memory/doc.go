//go:build windows

// Package memory allocates Vulkan device memory for the backend.
//
// Three layers: GpuAllocator picks a memory type from the usage flags
// and routes the request; per-type MemoryTypePool instances suballocate
// small and medium requests out of large VkDeviceMemory blocks (large
// requests past the dedicated threshold get their own allocation); and
// BuddyAllocator manages each block as power-of-two halves, splitting on
// allocation and re-merging freed buddies, so both operations stay
// logarithmic and external fragmentation stays low.
//
// GpuAllocator is thread-safe behind one mutex; the MemoryBlock handles
// it returns are not.
package memory
