package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/container"
	"github.com/gogpu/gpu/types"
)

// WindowHandle identifies a claimed native window by its platform display
// and window handles — opaque to this package, forwarded verbatim to
// Instance.CreateSurface (see Surface.CreateSurface's doc for the
// per-platform meaning of each field). The host windowing library supplies
// real values; this module never interprets them.
type WindowHandle struct {
	Display uintptr
	Window  uintptr
}

// ClaimedWindow is the per-window swapchain state (Swapchain/Window
// Data): a native surface, its current present-mode/composition, and —
// valid only between AcquireSwapchainTexture and the Submit that presents
// it — the drawable acquired for the current frame.
type ClaimedWindow struct {
	handle      WindowHandle
	surface     *Surface
	width       uint32
	height      uint32
	format      TextureFormat
	composition types.SwapchainComposition
	presentMode types.PresentMode

	drawable        *SurfaceTexture
	drawableTexture *Texture
}

// nativePresentMode maps the device-neutral present mode onto the
// gputypes.PresentMode vocabulary the HAL speaks.
func nativePresentMode(m types.PresentMode) gputypes.PresentMode {
	switch m {
	case types.PresentModeImmediate:
		return gputypes.PresentModeImmediate
	case types.PresentModeMailbox:
		return gputypes.PresentModeMailbox
	default:
		return gputypes.PresentModeFifo
	}
}

// compositionFormat maps a swapchain composition to a concrete surface
// format. Only SDR and SDR-linear have a matching format in this module's
// gputypes dependency; the two HDR compositions are accepted by the
// SwapchainComposition enum but rejected by SupportsSwapchainComposition
// since no HDR-capable format exists in that vocabulary — see DESIGN.md.
func compositionFormat(c types.SwapchainComposition) TextureFormat {
	if c == types.SwapchainCompositionSDRLinear {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatBGRA8UnormSrgb
}

// SupportsSwapchainComposition reports whether composition can be requested
// via ClaimWindow/SetSwapchainParameters on this device.
func (d *Device) SupportsSwapchainComposition(composition types.SwapchainComposition) bool {
	switch composition {
	case types.SwapchainCompositionSDR, types.SwapchainCompositionSDRLinear:
		return true
	default:
		return false
	}
}

// SupportsPresentMode reports whether presentMode can be requested via
// ClaimWindow/SetSwapchainParameters on this device. VSync is always
// available (every backend in this module supports FIFO); immediate and
// mailbox depend on the claimed surface's capabilities, verified for real
// at ClaimWindow/SetSwapchainParameters time.
func (d *Device) SupportsPresentMode(presentMode types.PresentMode) bool {
	if d.released {
		return false
	}
	return true
}

// ClaimWindow claims a native window for presentation, creating its
// swapchain surface at the given pixel dimensions and configured with the
// requested composition and present mode. Returns false (logged, no-op) on
// any failure — surface creation, configuration, and claim are all
// non-throwing.
func (d *Device) ClaimWindow(handle WindowHandle, width, height uint32, composition types.SwapchainComposition, presentMode types.PresentMode) bool {
	if d.released || d.instance == nil {
		return false
	}
	d.windowLock.Lock()
	defer d.windowLock.Unlock()

	if d.windows == nil {
		d.windows = make(map[WindowHandle]*ClaimedWindow)
	}
	if _, already := d.windows[handle]; already {
		return true
	}
	if !d.SupportsSwapchainComposition(composition) {
		return false
	}

	surface, err := d.instance.CreateSurface(handle.Display, handle.Window)
	if err != nil {
		return false
	}

	format := compositionFormat(composition)
	cfg := &SurfaceConfiguration{
		Width:       width,
		Height:      height,
		Format:      format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: nativePresentMode(presentMode),
		AlphaMode:   gputypes.CompositeAlphaModeOpaque,
	}
	if err := surface.Configure(d, cfg); err != nil {
		surface.Release()
		return false
	}

	d.windows[handle] = &ClaimedWindow{
		handle:      handle,
		surface:     surface,
		width:       width,
		height:      height,
		format:      format,
		composition: composition,
		presentMode: presentMode,
	}
	return true
}

// UnclaimWindow releases the window's swapchain surface. No-op if the
// window was never claimed.
func (d *Device) UnclaimWindow(handle WindowHandle) {
	d.windowLock.Lock()
	defer d.windowLock.Unlock()
	w, ok := d.windows[handle]
	if !ok {
		return
	}
	delete(d.windows, handle)
	w.surface.Release()
}

// SetSwapchainParameters reconfigures a claimed window's composition and
// present mode. Returns false if the window was never claimed or the
// combination is unsupported.
func (d *Device) SetSwapchainParameters(handle WindowHandle, composition types.SwapchainComposition, presentMode types.PresentMode) bool {
	d.windowLock.Lock()
	w, ok := d.windows[handle]
	d.windowLock.Unlock()
	if !ok || !d.SupportsSwapchainComposition(composition) {
		return false
	}

	format := compositionFormat(composition)
	cfg := &SurfaceConfiguration{
		Width:       w.width,
		Height:      w.height,
		Format:      format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: nativePresentMode(presentMode),
		AlphaMode:   gputypes.CompositeAlphaModeOpaque,
	}
	if err := w.surface.Configure(d, cfg); err != nil {
		return false
	}
	w.format = format
	w.composition = composition
	w.presentMode = presentMode
	return true
}

// GetSwapchainTextureFormat returns the texture format of a claimed
// window's swapchain, or an unknown-zero-value format if it was never
// claimed.
func (d *Device) GetSwapchainTextureFormat(handle WindowHandle) TextureFormat {
	d.windowLock.Lock()
	defer d.windowLock.Unlock()
	w, ok := d.windows[handle]
	if !ok {
		return 0
	}
	return w.format
}

// AcquireSwapchainTexture acquires the next drawable for a claimed window
// and wraps it in a non-cycleable Texture façade scoped to this
// command buffer: Submit presents every window acquired through it. Must
// be called on the thread that created the window; that is a caller
// obligation this module does not enforce. The returned Texture is owned
// by the swapchain; callers must not call Release() on it.
func (e *CommandEncoder) AcquireSwapchainTexture(handle WindowHandle) (*Texture, uint32, uint32, error) {
	if e.released {
		return nil, 0, 0, ErrReleased
	}
	d := e.device
	d.windowLock.Lock()
	w, ok := d.windows[handle]
	d.windowLock.Unlock()
	if !ok {
		return nil, 0, 0, fmt.Errorf("gpu: window not claimed")
	}

	st, _, err := w.surface.GetCurrentTexture()
	if err != nil {
		return nil, 0, 0, err
	}

	ring := container.New(fmt.Sprintf("swapchain[%p]", w), false, func() hal.Texture {
		return st.hal
	})
	texture := &Texture{ring: ring, device: d, format: w.format}

	w.drawable = st
	w.drawableTexture = texture
	e.track(texture.activeRef())
	e.presentWindows = append(e.presentWindows, w)

	return texture, w.width, w.height, nil
}
