package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpu/types"
)

func TestNativePresentModeMapping(t *testing.T) {
	cases := []struct {
		in   types.PresentMode
		want gputypes.PresentMode
	}{
		{types.PresentModeVSync, gputypes.PresentModeFifo},
		{types.PresentModeImmediate, gputypes.PresentModeImmediate},
		{types.PresentModeMailbox, gputypes.PresentModeMailbox},
	}
	for _, c := range cases {
		if got := nativePresentMode(c.in); got != c.want {
			t.Errorf("nativePresentMode(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCompositionFormatMapping(t *testing.T) {
	if got := compositionFormat(types.SwapchainCompositionSDR); got != gputypes.TextureFormatBGRA8UnormSrgb {
		t.Errorf("SDR composition format = %v, want BGRA8UnormSrgb", got)
	}
	if got := compositionFormat(types.SwapchainCompositionSDRLinear); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SDRLinear composition format = %v, want BGRA8Unorm", got)
	}
}

func TestSupportsSwapchainComposition(t *testing.T) {
	d := &Device{}
	if !d.SupportsSwapchainComposition(types.SwapchainCompositionSDR) {
		t.Error("SDR composition should be supported")
	}
	if !d.SupportsSwapchainComposition(types.SwapchainCompositionSDRLinear) {
		t.Error("SDRLinear composition should be supported")
	}
	if d.SupportsSwapchainComposition(types.SwapchainCompositionHDRExtendedLinear) {
		t.Error("HDR compositions have no matching gputypes format and must be reported unsupported")
	}
	if d.SupportsSwapchainComposition(types.SwapchainCompositionHDR10ST2048) {
		t.Error("HDR10 composition has no matching gputypes format and must be reported unsupported")
	}
}

func TestClaimWindowWithoutInstanceFails(t *testing.T) {
	d := &Device{}
	if d.ClaimWindow(WindowHandle{}, 100, 100, types.SwapchainCompositionSDR, types.PresentModeVSync) {
		t.Error("ClaimWindow must fail gracefully when the device has no instance")
	}
}

func TestUnclaimWindowOnUnclaimedHandleIsNoop(t *testing.T) {
	d := &Device{}
	d.UnclaimWindow(WindowHandle{Display: 1, Window: 2})
}

func TestGetSwapchainTextureFormatOfUnclaimedWindow(t *testing.T) {
	d := &Device{}
	if got := d.GetSwapchainTextureFormat(WindowHandle{}); got != 0 {
		t.Errorf("unclaimed window format = %v, want zero value", got)
	}
}
