package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTextureFormatTexelBlockSize(t *testing.T) {
	if got := TextureFormatTexelBlockSize(gputypes.TextureFormatRGBA8Unorm); got != 4 {
		t.Errorf("RGBA8Unorm block size = %d, want 4", got)
	}
	if got := TextureFormatTexelBlockSize(gputypes.TextureFormat(0xffff)); got != 0 {
		t.Errorf("unknown format block size = %d, want 0", got)
	}
}

func TestIsTextureFormatSupportedWithoutHAL(t *testing.T) {
	d := &Device{}
	if d.IsTextureFormatSupported(gputypes.TextureFormatRGBA8Unorm, gputypes.TextureUsageTextureBinding) {
		t.Error("a device with no core should never report format support")
	}
}

func TestGetBestSampleCountClampsAndDefaults(t *testing.T) {
	d := &Device{}
	if got := d.GetBestSampleCount(gputypes.TextureFormatRGBA8Unorm, 0); got != 1 {
		t.Errorf("desired=0 should return 1, got %d", got)
	}
	if got := d.GetBestSampleCount(gputypes.TextureFormatRGBA8Unorm, 4); got != 1 {
		t.Errorf("device with no HAL adapter should fall back to 1, got %d", got)
	}
}
