package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpu/hal"
)

// SampleCount is the number of samples per pixel a texture/render target is
// created with (1 disables multisampling).
type SampleCount = uint32

// TextureFormatTexelBlockSize returns the byte size of one texel block for
// format, or 0 if the format is unknown to this backend's capability tables.
// Pure lookup, independent of any device.
func TextureFormatTexelBlockSize(format TextureFormat) uint32 {
	if size, ok := texelBlockSizes[format]; ok {
		return size
	}
	return 0
}

// texelBlockSizes covers the formats this module's backends are expected to
// create (uncompressed color, depth/stencil, and the sRGB variants);
// compressed BC1-7 block sizes are a backend-reported capability, not a
// constant this neutral table can state without the adapter's compression
// support query, so they are intentionally absent (IsTextureFormatSupported
// still gates on them via the adapter).
var texelBlockSizes = map[TextureFormat]uint32{
	gputypes.TextureFormatRGBA8Unorm:     4,
	gputypes.TextureFormatRGBA8UnormSrgb: 4,
	gputypes.TextureFormatBGRA8Unorm:     4,
	gputypes.TextureFormatBGRA8UnormSrgb: 4,
	gputypes.TextureFormatDepth24Plus:    4,
	gputypes.TextureFormatDepth32Float:   4,
}

// IsTextureFormatSupported reports whether format may be used with usage on
// this device. A texture creation with an unsupported format/usage
// combination must reject at CreateTexture time; this is the query
// applications are expected to consult first.
func (d *Device) IsTextureFormatSupported(format TextureFormat, usage TextureUsage) bool {
	if d.released || d.core == nil || d.core.AdapterRef == nil {
		return false
	}
	adapter := d.core.AdapterRef.HALAdapter()
	if adapter == nil {
		// Mock/no-HAL device: optimistically accept the formats this
		// module's own format table knows about.
		_, known := texelBlockSizes[format]
		return known
	}

	caps := adapter.TextureFormatCapabilities(format)
	if usage&gputypes.TextureUsageTextureBinding != 0 && caps.Flags&hal.TextureFormatCapabilitySampled == 0 {
		return false
	}
	if usage&gputypes.TextureUsageStorageBinding != 0 && caps.Flags&hal.TextureFormatCapabilityStorage == 0 {
		return false
	}
	if usage&gputypes.TextureUsageRenderAttachment != 0 && caps.Flags&hal.TextureFormatCapabilityRenderAttachment == 0 {
		return false
	}
	return true
}

// GetBestSampleCount returns the highest sample count the backend supports
// for format that does not exceed desired, falling back to 1 if format
// cannot be multisampled at all.
func (d *Device) GetBestSampleCount(format TextureFormat, desired SampleCount) SampleCount {
	if desired <= 1 {
		return 1
	}
	if d.released || d.core == nil || d.core.AdapterRef == nil {
		return 1
	}
	adapter := d.core.AdapterRef.HALAdapter()
	if adapter == nil {
		return 1
	}
	caps := adapter.TextureFormatCapabilities(format)
	if caps.Flags&hal.TextureFormatCapabilityMultisample == 0 {
		return 1
	}
	// The HAL capability table reports multisample support as a boolean,
	// not a maximum count; clamp to the common hardware ceiling of 8x
	// rather than claim an unverified higher count.
	const maxKnownSampleCount = 8
	if desired > maxKnownSampleCount {
		return maxKnownSampleCount
	}
	return desired
}
