package software

import (
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpu/hal"
)

// handleTable maps the uintptr NativeHandle values handed out through
// BindGroupEntry resources back to the concrete objects they identify.
// Raw pointers round-tripped through uintptr would be invisible to the
// garbage collector, so the table keeps the objects reachable for as long
// as a handle is outstanding.
type handleTable struct {
	mu   sync.Mutex
	next uintptr
	objs map[uintptr]any
}

func newHandleTable() *handleTable {
	return &handleTable{next: 1, objs: make(map[uintptr]any)}
}

func (t *handleTable) register(obj any) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := t.next
	t.next++
	t.objs[h] = obj
	return h
}

func (t *handleTable) lookup(h uintptr) any {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.objs[h]
}

func (t *handleTable) drop(h uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.objs, h)
}

// handles is the process-wide handle table. One table rather than one per
// device: bind group entries carry no device pointer to scope a lookup by.
var handles = newHandleTable()

// buffer is plain host memory; the software backend has no device-local
// storage to distinguish from it.
type buffer struct {
	label  string
	usage  gputypes.BufferUsage
	data   []byte
	handle uintptr
}

func newBuffer(desc *hal.BufferDescriptor) *buffer {
	b := &buffer{label: desc.Label, usage: desc.Usage, data: make([]byte, desc.Size)}
	b.handle = handles.register(b)
	return b
}

func (b *buffer) Destroy()              { handles.drop(b.handle) }
func (b *buffer) NativeHandle() uintptr { return b.handle }

// mipLevel holds all array layers of one mip level, packed row-major at
// the texture's declared texel size with no row padding.
type mipLevel struct {
	width, height, layers int
	data                  []byte
}

// texture stores texel bytes in the declared format so copy-pass uploads
// and downloads round-trip exactly. Only 4-byte-per-texel color formats
// can additionally be rendered into (see isRenderableColorFormat).
type texture struct {
	desc   hal.TextureDescriptor
	mips   []mipLevel
	handle uintptr
}

func newTextureResource(desc *hal.TextureDescriptor) *texture {
	levels := int(desc.MipLevelCount)
	if levels < 1 {
		levels = 1
	}
	layers := int(desc.Size.DepthOrArrayLayers)
	if layers < 1 {
		layers = 1
	}
	bpp := texelSize(desc.Format)
	t := &texture{desc: *desc, mips: make([]mipLevel, levels)}
	w, h := int(desc.Size.Width), int(desc.Size.Height)
	for level := 0; level < levels; level++ {
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		t.mips[level] = mipLevel{
			width:  w,
			height: h,
			layers: layers,
			data:   make([]byte, w*h*layers*bpp),
		}
		w /= 2
		h /= 2
	}
	t.handle = handles.register(t)
	return t
}

func (t *texture) Destroy()              { handles.drop(t.handle) }
func (t *texture) NativeHandle() uintptr { return t.handle }

// layerBytes returns the byte slice covering one array layer of one mip
// level, or nil when the subresource is out of range.
func (t *texture) layerBytes(level, layer uint32) []byte {
	if int(level) >= len(t.mips) {
		return nil
	}
	mip := &t.mips[level]
	if int(layer) >= mip.layers {
		return nil
	}
	bpp := texelSize(t.desc.Format)
	stride := mip.width * mip.height * bpp
	off := int(layer) * stride
	return mip.data[off : off+stride]
}

type textureView struct {
	tex    *texture
	desc   hal.TextureViewDescriptor
	handle uintptr
}

func newTextureView(tex *texture, desc *hal.TextureViewDescriptor) *textureView {
	v := &textureView{tex: tex}
	if desc != nil {
		v.desc = *desc
	}
	v.handle = handles.register(v)
	return v
}

func (v *textureView) Destroy()              { handles.drop(v.handle) }
func (v *textureView) NativeHandle() uintptr { return v.handle }

// format returns the view's effective format: its own when set, the
// parent texture's otherwise.
func (v *textureView) format() gputypes.TextureFormat {
	if v.desc.Format != gputypes.TextureFormatUndefined {
		return v.desc.Format
	}
	return v.tex.desc.Format
}

type sampler struct {
	desc   hal.SamplerDescriptor
	handle uintptr
}

func newSampler(desc *hal.SamplerDescriptor) *sampler {
	s := &sampler{}
	if desc != nil {
		s.desc = *desc
	}
	s.handle = handles.register(s)
	return s
}

func (s *sampler) Destroy()              { handles.drop(s.handle) }
func (s *sampler) NativeHandle() uintptr { return s.handle }

// shaderModule carries the callback program resolved from the module's
// source, when the source names one (see shaders.go). Modules with real
// WGSL or SPIR-V bodies are accepted but carry no executable program.
type shaderModule struct {
	label   string
	program *program
}

func (m *shaderModule) Destroy() {}

type bindGroupLayout struct{ desc hal.BindGroupLayoutDescriptor }

func (l *bindGroupLayout) Destroy() {}

type bindGroup struct {
	label   string
	entries []gputypes.BindGroupEntry
}

func (g *bindGroup) Destroy() {}

// bufferAt resolves the buffer bound at the given binding index, with the
// bound sub-range applied. Returns nil when nothing suitable is bound.
func (g *bindGroup) bufferAt(binding uint32) []byte {
	for _, e := range g.entries {
		if e.Binding != binding {
			continue
		}
		bb, ok := e.Resource.(gputypes.BufferBinding)
		if !ok {
			continue
		}
		b, ok := handles.lookup(bb.Buffer).(*buffer)
		if !ok {
			return nil
		}
		data := b.data
		if bb.Offset > uint64(len(data)) {
			return nil
		}
		data = data[bb.Offset:]
		if bb.Size > 0 && bb.Size < uint64(len(data)) {
			data = data[:bb.Size]
		}
		return data
	}
	return nil
}

// textureViewAt resolves the texture view bound at the given binding index.
func (g *bindGroup) textureViewAt(binding uint32) *textureView {
	for _, e := range g.entries {
		if e.Binding != binding {
			continue
		}
		tb, ok := e.Resource.(gputypes.TextureViewBinding)
		if !ok {
			continue
		}
		v, _ := handles.lookup(tb.TextureView).(*textureView)
		return v
	}
	return nil
}

type pipelineLayout struct{ desc hal.PipelineLayoutDescriptor }

func (l *pipelineLayout) Destroy() {}

type renderPipeline struct {
	desc     hal.RenderPipelineDescriptor
	vertex   *program
	fragment *program
}

func (p *renderPipeline) Destroy() {}

type computePipeline struct {
	desc    hal.ComputePipelineDescriptor
	program *program
}

func (p *computePipeline) Destroy() {}

// commandBuffer is the recorded command list; Submit replays it.
type commandBuffer struct {
	label string
	ops   []func()
}

func (cb *commandBuffer) Destroy() { cb.ops = nil }

// texelSize returns the byte size of one texel for the formats the
// software backend stores. Block-compressed formats are rejected at
// texture creation, so every remaining format has a per-texel size.
func texelSize(format gputypes.TextureFormat) int {
	switch format {
	case gputypes.TextureFormatR8Unorm, gputypes.TextureFormatR8Snorm,
		gputypes.TextureFormatR8Uint, gputypes.TextureFormatR8Sint:
		return 1
	case gputypes.TextureFormatR16Uint, gputypes.TextureFormatR16Sint,
		gputypes.TextureFormatR16Float,
		gputypes.TextureFormatRG8Unorm, gputypes.TextureFormatRG8Snorm,
		gputypes.TextureFormatRG8Uint, gputypes.TextureFormatRG8Sint:
		return 2
	case gputypes.TextureFormatRGBA16Uint, gputypes.TextureFormatRGBA16Sint,
		gputypes.TextureFormatRGBA16Float,
		gputypes.TextureFormatRG32Uint, gputypes.TextureFormatRG32Sint,
		gputypes.TextureFormatRG32Float:
		return 8
	case gputypes.TextureFormatRGBA32Uint, gputypes.TextureFormatRGBA32Sint,
		gputypes.TextureFormatRGBA32Float:
		return 16
	default:
		// RGBA8/BGRA8 (plain and sRGB), depth formats, and anything
		// unrecognized store 4 bytes per texel.
		return 4
	}
}

// isRenderableColorFormat reports whether draws can write the format: the
// rasterizer produces RGBA float colors and packs them into 4-byte texels.
func isRenderableColorFormat(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}

// packColor writes an RGBA float color into dst at the given texel offset,
// swizzling for BGRA-ordered formats.
func packColor(dst []byte, off int, format gputypes.TextureFormat, c [4]float32) {
	if off < 0 || off+4 > len(dst) {
		return
	}
	r, g, b, a := colorByte(c[0]), colorByte(c[1]), colorByte(c[2]), colorByte(c[3])
	switch format {
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		dst[off], dst[off+1], dst[off+2], dst[off+3] = b, g, r, a
	default:
		dst[off], dst[off+1], dst[off+2], dst[off+3] = r, g, b, a
	}
}

// unpackColor reads a texel back into an RGBA float color.
func unpackColor(src []byte, off int, format gputypes.TextureFormat) [4]float32 {
	if off < 0 || off+4 > len(src) {
		return [4]float32{}
	}
	c0, c1, c2, c3 := src[off], src[off+1], src[off+2], src[off+3]
	switch format {
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		c0, c2 = c2, c0
	}
	return [4]float32{
		float32(c0) / 255,
		float32(c1) / 255,
		float32(c2) / 255,
		float32(c3) / 255,
	}
}

func colorByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
