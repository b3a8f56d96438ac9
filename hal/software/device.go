// Package software implements a reference hal.Backend entirely in Go: a
// CPU triangle rasterizer built on raster and shader. It has no native
// driver dependency, so it is always available, and its correctness is
// the baseline every other backend is measured against.
package software

import (
	"sync/atomic"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/types"
)

// defaultSurfaceWidth/Height size a surface's backing texture until the
// windowing layer above configures a real framebuffer size; the software
// backend has no presentation surface of its own to query.
const (
	defaultSurfaceWidth  = 1280
	defaultSurfaceHeight = 720
)

func init() {
	hal.RegisterBackend(Backend{})
}

// Backend implements hal.Backend for the CPU rasterizer. It never fails
// to construct an instance: there is no driver to probe.
type Backend struct{}

// Variant returns the backend type identifier.
func (Backend) Variant() types.Backend { return types.BackendSoftware }

// CreateInstance creates a software instance.
func (Backend) CreateInstance(*hal.InstanceDescriptor) (hal.Instance, error) {
	hal.Logger().Info("software: instance created")
	return &instance{}, nil
}

type instance struct{}

// CreateSurface returns an offscreen surface. The platform handles are
// accepted and ignored: there is no native window to bind, so presents
// are no-ops and the surface texture is plain host memory.
func (i *instance) CreateSurface(displayHandle, windowHandle uintptr) (hal.Surface, error) {
	return &surface{}, nil
}

// EnumerateAdapters exposes the one CPU adapter.
func (i *instance) EnumerateAdapters(hal.Surface) []hal.ExposedAdapter {
	return []hal.ExposedAdapter{
		{
			Adapter: &adapter{},
			Info: gputypes.AdapterInfo{
				Name:       "Software Rasterizer",
				Vendor:     "gogpu",
				DeviceType: gputypes.DeviceTypeCPU,
				Driver:     "software",
				DriverInfo: "pure-Go CPU rasterizer",
				Backend:    gputypes.BackendEmpty,
			},
			Features: 0,
			Capabilities: hal.Capabilities{
				Limits: gputypes.DefaultLimits(),
				AlignmentsMask: hal.Alignments{
					BufferCopyOffset: 4,
					BufferCopyPitch:  256,
				},
			},
		},
	}
}

func (i *instance) Destroy() {}

type adapter struct{}

// Open creates the logical device and its queue.
func (a *adapter) Open(features gputypes.Features, limits gputypes.Limits) (hal.OpenDevice, error) {
	d := &device{}
	return hal.OpenDevice{Device: d, Queue: &queue{device: d}}, nil
}

// TextureFormatCapabilities reports support for every format the backend
// stores; 4-byte color formats additionally render and blend.
func (a *adapter) TextureFormatCapabilities(format gputypes.TextureFormat) hal.TextureFormatCapabilities {
	flags := hal.TextureFormatCapabilitySampled
	if isRenderableColorFormat(format) {
		flags |= hal.TextureFormatCapabilityRenderAttachment |
			hal.TextureFormatCapabilityBlendable |
			hal.TextureFormatCapabilityStorage
	}
	return hal.TextureFormatCapabilities{Flags: flags}
}

// SurfaceCapabilities advertises the offscreen surface's fixed menu.
func (a *adapter) SurfaceCapabilities(hal.Surface) *hal.SurfaceCapabilities {
	return &hal.SurfaceCapabilities{
		Formats: []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8UnormSrgb,
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatRGBA8Unorm,
		},
		PresentModes: []gputypes.PresentMode{
			gputypes.PresentModeFifo,
			gputypes.PresentModeImmediate,
			gputypes.PresentModeMailbox,
		},
		AlphaModes: []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeOpaque},
	}
}

func (a *adapter) Destroy() {}

type device struct{}

func (d *device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	if desc == nil {
		return nil, hal.ErrInvalidUsage
	}
	return newBuffer(desc), nil
}

func (d *device) DestroyBuffer(buf hal.Buffer) {
	if buf != nil {
		buf.Destroy()
	}
}

func (d *device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	if desc == nil {
		return nil, hal.ErrInvalidUsage
	}
	if isCompressedFormat(desc.Format) {
		return nil, hal.ErrUnsupportedFormat
	}
	return newTextureResource(desc), nil
}

func (d *device) DestroyTexture(tex hal.Texture) {
	if tex != nil {
		tex.Destroy()
	}
}

func (d *device) CreateTextureView(tex hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	t, ok := tex.(*texture)
	if !ok {
		return nil, hal.ErrInvalidUsage
	}
	return newTextureView(t, desc), nil
}

func (d *device) DestroyTextureView(view hal.TextureView) {
	if view != nil {
		view.Destroy()
	}
}

func (d *device) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	return newSampler(desc), nil
}

func (d *device) DestroySampler(s hal.Sampler) {
	if s != nil {
		s.Destroy()
	}
}

func (d *device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	l := &bindGroupLayout{}
	if desc != nil {
		l.desc = *desc
	}
	return l, nil
}

func (d *device) DestroyBindGroupLayout(hal.BindGroupLayout) {}

func (d *device) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	if desc == nil {
		return nil, hal.ErrInvalidUsage
	}
	return &bindGroup{
		label:   desc.Label,
		entries: append([]gputypes.BindGroupEntry(nil), desc.Entries...),
	}, nil
}

func (d *device) DestroyBindGroup(hal.BindGroup) {}

func (d *device) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	l := &pipelineLayout{}
	if desc != nil {
		l.desc = *desc
	}
	return l, nil
}

func (d *device) DestroyPipelineLayout(hal.PipelineLayout) {}

// CreateShaderModule accepts any source. Only modules whose WGSL source
// names a registered callback program produce draws or dispatches; real
// shader bodies compile to inert modules (see shaders.go).
func (d *device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if desc == nil {
		return nil, hal.ErrInvalidUsage
	}
	return &shaderModule{label: desc.Label, program: lookupProgram(desc.Source)}, nil
}

func (d *device) DestroyShaderModule(hal.ShaderModule) {}

func (d *device) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	if desc == nil {
		return nil, hal.ErrInvalidUsage
	}
	p := &renderPipeline{desc: *desc}
	if m, ok := desc.Vertex.Module.(*shaderModule); ok {
		p.vertex = m.program
	}
	if desc.Fragment != nil {
		if m, ok := desc.Fragment.Module.(*shaderModule); ok {
			p.fragment = m.program
		}
	}
	return p, nil
}

func (d *device) DestroyRenderPipeline(hal.RenderPipeline) {}

// CreateComputePipeline requires an executable callback program: a
// dispatch that silently did nothing would be worse than an error here.
func (d *device) CreateComputePipeline(desc *hal.ComputePipelineDescriptor) (hal.ComputePipeline, error) {
	if desc == nil {
		return nil, hal.ErrInvalidUsage
	}
	m, ok := desc.Compute.Module.(*shaderModule)
	if !ok || m.program == nil || m.program.compute.Dispatch == nil {
		return nil, hal.ErrCompilationFailed
	}
	return &computePipeline{desc: *desc, program: m.program}, nil
}

func (d *device) DestroyComputePipeline(hal.ComputePipeline) {}

func (d *device) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	return &commandEncoder{}, nil
}

func (d *device) CreateFence() (hal.Fence, error) {
	return &fence{}, nil
}

func (d *device) DestroyFence(hal.Fence) {}

// Wait polls the fence until it reaches value. Submission is synchronous,
// so in practice the first check already passes; the poll loop only
// matters for fences signaled from another goroutine.
func (d *device) Wait(f hal.Fence, value uint64, timeout time.Duration) (bool, error) {
	fn, ok := f.(*fence)
	if !ok {
		return false, hal.ErrInvalidUsage
	}
	deadline := time.Now().Add(timeout)
	for {
		if fn.value.Load() >= value {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}
		time.Sleep(10 * time.Microsecond)
	}
}

func (d *device) WaitIdle() error { return nil }

func (d *device) Destroy() {}

// fence is a monotonically increasing completion value.
type fence struct {
	value atomic.Uint64
}

func (f *fence) Destroy() {}

type queue struct {
	device *device
}

// Submit replays every recorded command list in order, then signals the
// fence. By the time Submit returns the work is complete: the software
// queue has no asynchronous execution to hide.
func (q *queue) Submit(commandBuffers []hal.CommandBuffer, f hal.Fence, fenceValue uint64) error {
	for _, cb := range commandBuffers {
		sw, ok := cb.(*commandBuffer)
		if !ok {
			continue
		}
		for _, op := range sw.ops {
			op()
		}
	}
	if fn, ok := f.(*fence); ok && fn != nil {
		fn.value.Store(fenceValue)
	}
	return nil
}

func (q *queue) WriteBuffer(buf hal.Buffer, offset uint64, data []byte) {
	b, ok := buf.(*buffer)
	if !ok {
		return
	}
	if offset+uint64(len(data)) > uint64(len(b.data)) {
		hal.Logger().Error("software: WriteBuffer out of range",
			"offset", offset, "len", len(data), "size", len(b.data))
		return
	}
	copy(b.data[offset:], data)
}

// ReadBuffer reads buffer contents back synchronously. Host memory is the
// only memory, so this is a plain copy.
func (q *queue) ReadBuffer(buf hal.Buffer, offset uint64, data []byte) error {
	b, ok := buf.(*buffer)
	if !ok {
		return hal.ErrInvalidUsage
	}
	if offset+uint64(len(data)) > uint64(len(b.data)) {
		return hal.ErrInvalidUsage
	}
	copy(data, b.data[offset:])
	return nil
}

func (q *queue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) {
	if dst == nil || layout == nil || size == nil {
		return
	}
	t, ok := dst.Texture.(*texture)
	if !ok {
		return
	}
	staging := &buffer{data: data}
	copyBufferTexture(staging, t, hal.BufferTextureCopy{
		BufferLayout: *layout,
		TextureBase:  *dst,
		Size:         *size,
	}, true)
}

// Present is a no-op: the offscreen surface has nowhere to show the
// drawable. The texture stays readable until the next acquire.
func (q *queue) Present(s hal.Surface, tex hal.SurfaceTexture) error {
	hal.Logger().Debug("software: present")
	return nil
}

func (q *queue) GetTimestampPeriod() float32 { return 1 }

// surface is an offscreen swapchain: one backing texture recreated on
// Configure, handed out by AcquireTexture, recycled forever.
type surface struct {
	config  hal.SurfaceConfiguration
	backing *texture
}

func (s *surface) Destroy() {
	if s.backing != nil {
		s.backing.Destroy()
		s.backing = nil
	}
}

func (s *surface) Configure(_ hal.Device, config *hal.SurfaceConfiguration) error {
	if config == nil {
		return hal.ErrInvalidUsage
	}
	width, height := config.Width, config.Height
	if width == 0 || height == 0 {
		width, height = defaultSurfaceWidth, defaultSurfaceHeight
	}
	if s.backing != nil {
		s.backing.Destroy()
	}
	s.config = *config
	s.backing = newTextureResource(&hal.TextureDescriptor{
		Label:         "surface",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        config.Format,
		Usage:         config.Usage,
	})
	return nil
}

func (s *surface) Unconfigure(hal.Device) {
	if s.backing != nil {
		s.backing.Destroy()
		s.backing = nil
	}
}

func (s *surface) AcquireTexture(hal.Fence) (*hal.AcquiredSurfaceTexture, error) {
	if s.backing == nil {
		return nil, hal.ErrSurfaceOutdated
	}
	return &hal.AcquiredSurfaceTexture{Texture: s.backing}, nil
}

func (s *surface) DiscardTexture(hal.SurfaceTexture) {}

// isCompressedFormat reports block-compressed formats, which the software
// backend rejects at creation rather than storing bytes it cannot
// interpret.
func isCompressedFormat(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatBC1RGBAUnorm, gputypes.TextureFormatBC1RGBAUnormSrgb,
		gputypes.TextureFormatBC2RGBAUnorm, gputypes.TextureFormatBC2RGBAUnormSrgb,
		gputypes.TextureFormatBC3RGBAUnorm, gputypes.TextureFormatBC3RGBAUnormSrgb,
		gputypes.TextureFormatBC4RUnorm, gputypes.TextureFormatBC4RSnorm,
		gputypes.TextureFormatBC5RGUnorm, gputypes.TextureFormatBC5RGSnorm,
		gputypes.TextureFormatBC6HRGBUfloat, gputypes.TextureFormatBC6HRGBFloat,
		gputypes.TextureFormatBC7RGBAUnorm, gputypes.TextureFormatBC7RGBAUnormSrgb,
		gputypes.TextureFormatETC2RGB8Unorm, gputypes.TextureFormatETC2RGBA8Unorm,
		gputypes.TextureFormatASTC4x4Unorm, gputypes.TextureFormatASTC12x12UnormSrgb:
		return true
	default:
		return false
	}
}
