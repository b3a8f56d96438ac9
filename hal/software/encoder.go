package software

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/hal/software/raster"
	"github.com/gogpu/gpu/hal/software/shader"
)

// commandEncoder records operations as closures and hands them to the
// queue inside a commandBuffer. Nothing executes until Submit replays the
// list, so recorded work observes the state of its sources at execution
// time, matching the queue-ordered semantics of the native backends.
type commandEncoder struct {
	label     string
	ops       []func()
	recording bool
}

func (e *commandEncoder) BeginEncoding(label string) error {
	e.label = label
	e.ops = nil
	e.recording = true
	return nil
}

func (e *commandEncoder) EndEncoding() (hal.CommandBuffer, error) {
	if !e.recording {
		return nil, hal.ErrInvalidUsage
	}
	e.recording = false
	cb := &commandBuffer{label: e.label, ops: e.ops}
	e.ops = nil
	return cb, nil
}

func (e *commandEncoder) DiscardEncoding() {
	e.recording = false
	e.ops = nil
}

func (e *commandEncoder) ResetAll(commandBuffers []hal.CommandBuffer) {
	for _, cb := range commandBuffers {
		if sw, ok := cb.(*commandBuffer); ok {
			sw.ops = nil
		}
	}
}

// Host memory is coherent; transitions have nothing to do.
func (e *commandEncoder) TransitionBuffers([]hal.BufferBarrier)   {}
func (e *commandEncoder) TransitionTextures([]hal.TextureBarrier) {}

func (e *commandEncoder) ClearBuffer(buf hal.Buffer, offset, size uint64) {
	b, ok := buf.(*buffer)
	if !ok {
		return
	}
	e.ops = append(e.ops, func() {
		end := offset + size
		if end > uint64(len(b.data)) {
			end = uint64(len(b.data))
		}
		for i := offset; i < end; i++ {
			b.data[i] = 0
		}
	})
}

func (e *commandEncoder) CopyBufferToBuffer(src, dst hal.Buffer, regions []hal.BufferCopy) {
	s, ok1 := src.(*buffer)
	d, ok2 := dst.(*buffer)
	if !ok1 || !ok2 {
		return
	}
	copies := append([]hal.BufferCopy(nil), regions...)
	e.ops = append(e.ops, func() {
		for _, r := range copies {
			if r.SrcOffset+r.Size > uint64(len(s.data)) || r.DstOffset+r.Size > uint64(len(d.data)) {
				hal.Logger().Error("software: buffer copy out of range",
					"src", len(s.data), "dst", len(d.data), "size", r.Size)
				continue
			}
			copy(d.data[r.DstOffset:r.DstOffset+r.Size], s.data[r.SrcOffset:r.SrcOffset+r.Size])
		}
	})
}

func (e *commandEncoder) CopyBufferToTexture(src hal.Buffer, dst hal.Texture, regions []hal.BufferTextureCopy) {
	s, ok1 := src.(*buffer)
	d, ok2 := dst.(*texture)
	if !ok1 || !ok2 {
		return
	}
	copies := append([]hal.BufferTextureCopy(nil), regions...)
	e.ops = append(e.ops, func() {
		for _, r := range copies {
			copyBufferTexture(s, d, r, true)
		}
	})
}

func (e *commandEncoder) CopyTextureToBuffer(src hal.Texture, dst hal.Buffer, regions []hal.BufferTextureCopy) {
	s, ok1 := src.(*texture)
	d, ok2 := dst.(*buffer)
	if !ok1 || !ok2 {
		return
	}
	copies := append([]hal.BufferTextureCopy(nil), regions...)
	e.ops = append(e.ops, func() {
		for _, r := range copies {
			copyBufferTexture(d, s, r, false)
		}
	})
}

// copyBufferTexture moves texel rows between a buffer and a texture
// subresource. toTexture selects the direction.
func copyBufferTexture(buf *buffer, tex *texture, r hal.BufferTextureCopy, toTexture bool) {
	bpp := texelSize(tex.desc.Format)
	width := int(r.Size.Width)
	height := int(r.Size.Height)
	depth := int(r.Size.DepthOrArrayLayers)
	if depth < 1 {
		depth = 1
	}
	bytesPerRow := int(r.BufferLayout.BytesPerRow)
	if bytesPerRow == 0 {
		bytesPerRow = width * bpp
	}
	rowsPerImage := int(r.BufferLayout.RowsPerImage)
	if rowsPerImage == 0 {
		rowsPerImage = height
	}
	for z := 0; z < depth; z++ {
		layer := r.TextureBase.Origin.Z + uint32(z)
		texBytes := tex.layerBytes(r.TextureBase.MipLevel, layer)
		if texBytes == nil {
			hal.Logger().Error("software: texture copy subresource out of range",
				"mip", r.TextureBase.MipLevel, "layer", layer)
			continue
		}
		mip := tex.mips[r.TextureBase.MipLevel]
		rowBytes := width * bpp
		for row := 0; row < height; row++ {
			bufOff := int(r.BufferLayout.Offset) + z*rowsPerImage*bytesPerRow + row*bytesPerRow
			texOff := ((int(r.TextureBase.Origin.Y)+row)*mip.width + int(r.TextureBase.Origin.X)) * bpp
			if bufOff+rowBytes > len(buf.data) || texOff+rowBytes > len(texBytes) {
				hal.Logger().Error("software: texture copy row out of range",
					"bufOff", bufOff, "texOff", texOff, "rowBytes", rowBytes)
				continue
			}
			if toTexture {
				copy(texBytes[texOff:texOff+rowBytes], buf.data[bufOff:bufOff+rowBytes])
			} else {
				copy(buf.data[bufOff:bufOff+rowBytes], texBytes[texOff:texOff+rowBytes])
			}
		}
	}
}

func (e *commandEncoder) CopyTextureToTexture(src, dst hal.Texture, regions []hal.TextureCopy) {
	s, ok1 := src.(*texture)
	d, ok2 := dst.(*texture)
	if !ok1 || !ok2 {
		return
	}
	copies := append([]hal.TextureCopy(nil), regions...)
	e.ops = append(e.ops, func() {
		for _, r := range copies {
			copyTextureRegion(s, d, r)
		}
	})
}

func copyTextureRegion(src, dst *texture, r hal.TextureCopy) {
	if texelSize(src.desc.Format) != texelSize(dst.desc.Format) {
		hal.Logger().Error("software: texture copy between incompatible texel sizes")
		return
	}
	bpp := texelSize(src.desc.Format)
	depth := int(r.Size.DepthOrArrayLayers)
	if depth < 1 {
		depth = 1
	}
	for z := 0; z < depth; z++ {
		srcBytes := src.layerBytes(r.SrcBase.MipLevel, r.SrcBase.Origin.Z+uint32(z))
		dstBytes := dst.layerBytes(r.DstBase.MipLevel, r.DstBase.Origin.Z+uint32(z))
		if srcBytes == nil || dstBytes == nil {
			continue
		}
		srcMip := src.mips[r.SrcBase.MipLevel]
		dstMip := dst.mips[r.DstBase.MipLevel]
		rowBytes := int(r.Size.Width) * bpp
		for row := 0; row < int(r.Size.Height); row++ {
			so := ((int(r.SrcBase.Origin.Y)+row)*srcMip.width + int(r.SrcBase.Origin.X)) * bpp
			do := ((int(r.DstBase.Origin.Y)+row)*dstMip.width + int(r.DstBase.Origin.X)) * bpp
			if so+rowBytes > len(srcBytes) || do+rowBytes > len(dstBytes) {
				continue
			}
			copy(dstBytes[do:do+rowBytes], srcBytes[so:so+rowBytes])
		}
	}
}

// GenerateMipmaps box-filters each 4-byte-texel mip level down into the
// next. Other formats are left untouched; the caller's blit-chain
// fallback covers them on backends with real sampling hardware.
func (e *commandEncoder) GenerateMipmaps(tex hal.Texture) {
	t, ok := tex.(*texture)
	if !ok || texelSize(t.desc.Format) != 4 {
		return
	}
	e.ops = append(e.ops, func() {
		for level := 1; level < len(t.mips); level++ {
			srcMip, dstMip := t.mips[level-1], t.mips[level]
			for layer := 0; layer < dstMip.layers; layer++ {
				src := t.layerBytes(uint32(level-1), uint32(layer))
				dst := t.layerBytes(uint32(level), uint32(layer))
				downsampleBox(src, srcMip.width, srcMip.height, dst, dstMip.width, dstMip.height)
			}
		}
	})
}

func downsampleBox(src []byte, sw, sh int, dst []byte, dw, dh int) {
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			sx, sy := x*2, y*2
			var sum [4]int
			count := 0
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					px, py := sx+dx, sy+dy
					if px >= sw || py >= sh {
						continue
					}
					off := (py*sw + px) * 4
					for c := 0; c < 4; c++ {
						sum[c] += int(src[off+c])
					}
					count++
				}
			}
			if count == 0 {
				continue
			}
			off := (y*dw + x) * 4
			for c := 0; c < 4; c++ {
				dst[off+c] = byte(sum[c] / count)
			}
		}
	}
}

// --- Render pass ---

type vertexBinding struct {
	buf    *buffer
	offset uint64
}

type indexBinding struct {
	buf    *buffer
	format gputypes.IndexFormat
	offset uint64
}

// renderPassEncoder records draws against a single color attachment. The
// pass resolves its attachment views at begin time and appends draw
// closures to the parent encoder's op list.
type renderPassEncoder struct {
	enc   *commandEncoder
	color *textureView
	depth *textureView

	depthDesc *hal.RenderPassDepthStencilAttachment

	pipeline      *renderPipeline
	bindGroups    map[uint32]*bindGroup
	vertexBufs    map[uint32]vertexBinding
	index         indexBinding
	viewport      raster.Viewport
	scissor       [4]uint32
	blendConstant [4]float32
	stencilRef    uint32

	// depthBuf lives for the duration of the pass; the neutral layer
	// above re-clears or re-loads depth at every pass boundary, so
	// persisting it past End has no observable effect.
	depthBuf *raster.DepthBuffer

	ended bool
}

func (e *commandEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	p := &renderPassEncoder{
		enc:        e,
		bindGroups: make(map[uint32]*bindGroup),
		vertexBufs: make(map[uint32]vertexBinding),
	}
	if desc == nil {
		return p
	}
	for i := range desc.ColorAttachments {
		ca := &desc.ColorAttachments[i]
		view, ok := ca.View.(*textureView)
		if !ok {
			continue
		}
		if p.color == nil {
			p.color = view
		}
		if ca.LoadOp == gputypes.LoadOpClear {
			clear := ca.ClearValue
			target := view
			e.ops = append(e.ops, func() {
				clearView(target, [4]float32{
					float32(clear.R), float32(clear.G), float32(clear.B), float32(clear.A),
				})
			})
		}
	}
	if ds := desc.DepthStencilAttachment; ds != nil {
		if view, ok := ds.View.(*textureView); ok {
			p.depth = view
			p.depthDesc = ds
		}
	}
	if p.color != nil && len(p.color.tex.mips) > 0 {
		mip := p.color.tex.mips[p.color.desc.BaseMipLevel]
		p.viewport = raster.Viewport{Width: mip.width, Height: mip.height, MinDepth: 0, MaxDepth: 1}
		p.scissor = [4]uint32{0, 0, uint32(mip.width), uint32(mip.height)}
		p.depthBuf = raster.NewDepthBuffer(mip.width, mip.height)
		clearDepth := float32(1)
		if p.depthDesc != nil && p.depthDesc.DepthLoadOp == gputypes.LoadOpClear {
			clearDepth = p.depthDesc.DepthClearValue
		}
		p.depthBuf.Clear(clearDepth)
	}
	return p
}

func clearView(v *textureView, color [4]float32) {
	level := v.desc.BaseMipLevel
	layer := v.desc.BaseArrayLayer
	data := v.tex.layerBytes(level, layer)
	if data == nil || !isRenderableColorFormat(v.format()) {
		return
	}
	format := v.format()
	for off := 0; off+4 <= len(data); off += 4 {
		packColor(data, off, format, color)
	}
}

func (p *renderPassEncoder) End() { p.ended = true }

func (p *renderPassEncoder) SetPipeline(pipeline hal.RenderPipeline) {
	p.pipeline, _ = pipeline.(*renderPipeline)
}

func (p *renderPassEncoder) SetBindGroup(index uint32, group hal.BindGroup, _ []uint32) {
	if g, ok := group.(*bindGroup); ok {
		p.bindGroups[index] = g
	}
}

func (p *renderPassEncoder) SetVertexBuffer(slot uint32, buf hal.Buffer, offset uint64) {
	if b, ok := buf.(*buffer); ok {
		p.vertexBufs[slot] = vertexBinding{buf: b, offset: offset}
	}
}

func (p *renderPassEncoder) SetIndexBuffer(buf hal.Buffer, format gputypes.IndexFormat, offset uint64) {
	if b, ok := buf.(*buffer); ok {
		p.index = indexBinding{buf: b, format: format, offset: offset}
	}
}

func (p *renderPassEncoder) SetViewport(x, y, width, height, minDepth, maxDepth float32) {
	p.viewport = raster.Viewport{
		X: int(x), Y: int(y),
		Width: int(width), Height: int(height),
		MinDepth: minDepth, MaxDepth: maxDepth,
	}
}

func (p *renderPassEncoder) SetScissorRect(x, y, width, height uint32) {
	p.scissor = [4]uint32{x, y, width, height}
}

func (p *renderPassEncoder) SetBlendConstant(color *gputypes.Color) {
	if color != nil {
		p.blendConstant = [4]float32{
			float32(color.R), float32(color.G), float32(color.B), float32(color.A),
		}
	}
}

func (p *renderPassEncoder) SetStencilReference(reference uint32) {
	p.stencilRef = reference
}

func (p *renderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.recordDraw(nil, vertexCount, firstVertex, 0)
}

func (p *renderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	idx := p.index
	if idx.buf == nil {
		return
	}
	indices := decodeIndices(idx, firstIndex, indexCount)
	p.recordDraw(indices, indexCount, 0, baseVertex)
}

func (p *renderPassEncoder) DrawIndirect(buf hal.Buffer, offset uint64) {
	b, ok := buf.(*buffer)
	if !ok {
		return
	}
	state := p.snapshot()
	p.enc.ops = append(p.enc.ops, func() {
		if offset+16 > uint64(len(b.data)) {
			return
		}
		vertexCount := binary.LittleEndian.Uint32(b.data[offset:])
		firstVertex := binary.LittleEndian.Uint32(b.data[offset+8:])
		executeDraw(state, nil, vertexCount, firstVertex, 0)
	})
}

func (p *renderPassEncoder) DrawIndexedIndirect(buf hal.Buffer, offset uint64) {
	b, ok := buf.(*buffer)
	if !ok {
		return
	}
	state := p.snapshot()
	idx := p.index
	p.enc.ops = append(p.enc.ops, func() {
		if offset+20 > uint64(len(b.data)) || idx.buf == nil {
			return
		}
		indexCount := binary.LittleEndian.Uint32(b.data[offset:])
		firstIndex := binary.LittleEndian.Uint32(b.data[offset+8:])
		baseVertex := int32(binary.LittleEndian.Uint32(b.data[offset+12:]))
		indices := decodeIndices(idx, firstIndex, indexCount)
		executeDraw(state, indices, indexCount, 0, baseVertex)
	})
}

func (p *renderPassEncoder) ExecuteBundle(hal.RenderBundle) {
	hal.Logger().Debug("software: render bundles are not supported")
}

func (p *renderPassEncoder) PushDebugGroup(label string) {
	hal.Logger().Debug("software: debug group", "label", label)
}

func (p *renderPassEncoder) PopDebugGroup() {}

func (p *renderPassEncoder) InsertDebugMarker(label string) {
	hal.Logger().Debug("software: debug marker", "label", label)
}

// drawState is the immutable snapshot of pass state one draw executes
// against. Later state changes in the pass must not affect earlier draws.
type drawState struct {
	color      *textureView
	pipeline   *renderPipeline
	bindGroup0 *bindGroup
	vertexBufs map[uint32]vertexBinding
	viewport   raster.Viewport
	scissor    [4]uint32
	depthBuf   *raster.DepthBuffer
	depthTest  bool
	depthComp  raster.CompareFunc
	depthWrite bool
}

func (p *renderPassEncoder) snapshot() *drawState {
	s := &drawState{
		color:      p.color,
		pipeline:   p.pipeline,
		bindGroup0: p.bindGroups[0],
		vertexBufs: make(map[uint32]vertexBinding, len(p.vertexBufs)),
		viewport:   p.viewport,
		scissor:    p.scissor,
		depthBuf:   p.depthBuf,
	}
	for k, v := range p.vertexBufs {
		s.vertexBufs[k] = v
	}
	if p.pipeline != nil && p.pipeline.desc.DepthStencil != nil && p.depth != nil {
		ds := p.pipeline.desc.DepthStencil
		s.depthTest = ds.DepthCompare != gputypes.CompareFunctionUndefined &&
			ds.DepthCompare != gputypes.CompareFunctionAlways
		s.depthComp = compareToRaster(ds.DepthCompare)
		s.depthWrite = ds.DepthWriteEnabled
	}
	return s
}

func (p *renderPassEncoder) recordDraw(indices []uint32, count, firstVertex uint32, baseVertex int32) {
	state := p.snapshot()
	p.enc.ops = append(p.enc.ops, func() {
		executeDraw(state, indices, count, firstVertex, baseVertex)
	})
}

func decodeIndices(idx indexBinding, firstIndex, count uint32) []uint32 {
	out := make([]uint32, 0, count)
	data := idx.buf.data
	if idx.format == gputypes.IndexFormatUint16 {
		for i := uint32(0); i < count; i++ {
			off := idx.offset + uint64(firstIndex+i)*2
			if off+2 > uint64(len(data)) {
				break
			}
			out = append(out, uint32(binary.LittleEndian.Uint16(data[off:])))
		}
		return out
	}
	for i := uint32(0); i < count; i++ {
		off := idx.offset + uint64(firstIndex+i)*4
		if off+4 > uint64(len(data)) {
			break
		}
		out = append(out, binary.LittleEndian.Uint32(data[off:]))
	}
	return out
}

// executeDraw runs the full CPU pipeline for one draw: vertex fetch,
// vertex shading, primitive assembly, clipping, viewport transform, and
// rasterization with fragment shading into the color attachment.
func executeDraw(s *drawState, indices []uint32, count, firstVertex uint32, baseVertex int32) {
	if s.pipeline == nil || s.color == nil {
		return
	}
	prog := s.pipeline.vertex
	frag := s.pipeline.fragment
	if prog == nil || prog.vertex == nil || frag == nil || frag.fragment == nil {
		hal.Logger().Debug("software: pipeline has no executable callback program, draw skipped")
		return
	}
	format := s.color.format()
	if !isRenderableColorFormat(format) {
		hal.Logger().Debug("software: unsupported render target format", "format", format)
		return
	}
	target := s.color.tex.layerBytes(s.color.desc.BaseMipLevel, s.color.desc.BaseArrayLayer)
	if target == nil {
		return
	}
	mip := s.color.tex.mips[s.color.desc.BaseMipLevel]

	vertexUniforms := prog.decodeUniforms(s.bindGroup0)
	fragmentUniforms := vertexUniforms
	if frag != prog {
		fragmentUniforms = frag.decodeUniforms(s.bindGroup0)
	}

	fetch := func(i uint32) raster.ClipSpaceVertex {
		pos, attrs := fetchVertex(s.pipeline, s.vertexBufs, i)
		return prog.vertex(int(i), pos, attrs, vertexUniforms)
	}

	var shaded []raster.ClipSpaceVertex
	if indices != nil {
		shaded = make([]raster.ClipSpaceVertex, 0, len(indices))
		for _, idx := range indices {
			shaded = append(shaded, fetch(uint32(int32(idx)+baseVertex)))
		}
	} else {
		shaded = make([]raster.ClipSpaceVertex, 0, count)
		for i := uint32(0); i < count; i++ {
			shaded = append(shaded, fetch(firstVertex+i))
		}
	}

	topology := s.pipeline.desc.Primitive.Topology
	cull := cullToRaster(s.pipeline.desc.Primitive.CullMode)
	front := frontFaceToRaster(s.pipeline.desc.Primitive.FrontFace)

	emit := func(tri [3]raster.ClipSpaceVertex) {
		if raster.ShouldCullClipSpace(tri, cull, front) {
			return
		}
		for _, clipped := range raster.ClipTriangleFast(tri) {
			screen := raster.Triangle{
				V0: toScreen(clipped[0], s.viewport),
				V1: toScreen(clipped[1], s.viewport),
				V2: toScreen(clipped[2], s.viewport),
			}
			raster.Rasterize(screen, s.viewport, func(f raster.Fragment) {
				if uint32(f.X) < s.scissor[0] || uint32(f.Y) < s.scissor[1] ||
					uint32(f.X) >= s.scissor[0]+s.scissor[2] ||
					uint32(f.Y) >= s.scissor[1]+s.scissor[3] {
					return
				}
				if s.depthTest && s.depthBuf != nil {
					if !depthPasses(f.Depth, s.depthBuf.Get(f.X, f.Y), s.depthComp) {
						return
					}
					if s.depthWrite {
						s.depthBuf.Set(f.X, f.Y, f.Depth)
					}
				}
				color := frag.fragment(f, fragmentUniforms)
				off := (f.Y*mip.width + f.X) * 4
				packColor(target, off, format, color)
			})
		}
	}

	switch topology {
	case gputypes.PrimitiveTopologyTriangleList:
		for i := 0; i+2 < len(shaded); i += 3 {
			emit([3]raster.ClipSpaceVertex{shaded[i], shaded[i+1], shaded[i+2]})
		}
	case gputypes.PrimitiveTopologyTriangleStrip:
		for i := 0; i+2 < len(shaded); i++ {
			if i%2 == 0 {
				emit([3]raster.ClipSpaceVertex{shaded[i], shaded[i+1], shaded[i+2]})
			} else {
				emit([3]raster.ClipSpaceVertex{shaded[i+1], shaded[i], shaded[i+2]})
			}
		}
	default:
		hal.Logger().Debug("software: unsupported primitive topology", "topology", topology)
	}
}

func depthPasses(src, dst float32, cmp raster.CompareFunc) bool {
	switch cmp {
	case raster.CompareNever:
		return false
	case raster.CompareLess:
		return src < dst
	case raster.CompareEqual:
		return src == dst
	case raster.CompareLessEqual:
		return src <= dst
	case raster.CompareGreater:
		return src > dst
	case raster.CompareNotEqual:
		return src != dst
	case raster.CompareGreaterEqual:
		return src >= dst
	default:
		return true
	}
}

// fetchVertex reads one vertex's position and remaining attributes from
// the bound vertex buffers per the pipeline's declared layouts. Attribute
// location 0 is the position; other locations contribute floats in
// location order.
func fetchVertex(p *renderPipeline, bufs map[uint32]vertexBinding, index uint32) ([3]float32, []float32) {
	var pos [3]float32
	type locAttr struct {
		location uint32
		values   []float32
	}
	var rest []locAttr
	for slot, layout := range p.desc.Vertex.Buffers {
		binding, ok := bufs[uint32(slot)]
		if !ok {
			continue
		}
		base := binding.offset + uint64(index)*layout.ArrayStride
		for _, attr := range layout.Attributes {
			values := decodeVertexAttr(binding.buf.data, base+attr.Offset, attr.Format)
			if values == nil {
				continue
			}
			if attr.ShaderLocation == 0 {
				copy(pos[:], values)
			} else {
				rest = append(rest, locAttr{location: attr.ShaderLocation, values: values})
			}
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].location < rest[j].location })
	var attrs []float32
	for _, a := range rest {
		attrs = append(attrs, a.values...)
	}
	return pos, attrs
}

func decodeVertexAttr(data []byte, offset uint64, format gputypes.VertexFormat) []float32 {
	var n int
	switch format {
	case gputypes.VertexFormatFloat32:
		n = 1
	case gputypes.VertexFormatFloat32x2:
		n = 2
	case gputypes.VertexFormatFloat32x3:
		n = 3
	case gputypes.VertexFormatFloat32x4:
		n = 4
	default:
		return nil
	}
	if offset+uint64(n)*4 > uint64(len(data)) {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset+uint64(i)*4:]))
	}
	return out
}

// toScreen applies perspective divide and the viewport transform. The
// rasterizer performs perspective-correct attribute interpolation itself
// from W = 1/w, so attributes pass through undivided.
func toScreen(v raster.ClipSpaceVertex, vp raster.Viewport) raster.ScreenVertex {
	w := v.Position[3]
	if w == 0 {
		w = 1
	}
	invW := 1 / w
	ndcX := v.Position[0] * invW
	ndcY := v.Position[1] * invW
	ndcZ := v.Position[2] * invW
	attrs := make([]float32, len(v.Attributes))
	copy(attrs, v.Attributes)
	return raster.ScreenVertex{
		X:          float32(vp.X) + (ndcX+1)*0.5*float32(vp.Width),
		Y:          float32(vp.Y) + (1-ndcY)*0.5*float32(vp.Height),
		Z:          vp.MinDepth + ndcZ*(vp.MaxDepth-vp.MinDepth),
		W:          invW,
		Attributes: attrs,
	}
}

func cullToRaster(m gputypes.CullMode) raster.CullMode {
	switch m {
	case gputypes.CullModeFront:
		return raster.CullFront
	case gputypes.CullModeBack:
		return raster.CullBack
	default:
		return raster.CullNone
	}
}

func frontFaceToRaster(f gputypes.FrontFace) raster.FrontFace {
	if f == gputypes.FrontFaceCW {
		return raster.FrontFaceCW
	}
	return raster.FrontFaceCCW
}

func compareToRaster(c gputypes.CompareFunction) raster.CompareFunc {
	switch c {
	case gputypes.CompareFunctionNever:
		return raster.CompareNever
	case gputypes.CompareFunctionLess:
		return raster.CompareLess
	case gputypes.CompareFunctionEqual:
		return raster.CompareEqual
	case gputypes.CompareFunctionLessEqual:
		return raster.CompareLessEqual
	case gputypes.CompareFunctionGreater:
		return raster.CompareGreater
	case gputypes.CompareFunctionNotEqual:
		return raster.CompareNotEqual
	case gputypes.CompareFunctionGreaterEqual:
		return raster.CompareGreaterEqual
	default:
		return raster.CompareAlways
	}
}

// --- Compute pass ---

type computePassEncoder struct {
	enc        *commandEncoder
	pipeline   *computePipeline
	bindGroups map[uint32]*bindGroup
}

func (e *commandEncoder) BeginComputePass(*hal.ComputePassDescriptor) hal.ComputePassEncoder {
	return &computePassEncoder{enc: e, bindGroups: make(map[uint32]*bindGroup)}
}

func (p *computePassEncoder) End() {}

func (p *computePassEncoder) SetPipeline(pipeline hal.ComputePipeline) {
	p.pipeline, _ = pipeline.(*computePipeline)
}

func (p *computePassEncoder) SetBindGroup(index uint32, group hal.BindGroup, _ []uint32) {
	if g, ok := group.(*bindGroup); ok {
		p.bindGroups[index] = g
	}
}

func (p *computePassEncoder) Dispatch(x, y, z uint32) {
	pipeline := p.pipeline
	group := p.bindGroups[0]
	p.enc.ops = append(p.enc.ops, func() {
		executeDispatch(pipeline, group, x, y, z)
	})
}

func (p *computePassEncoder) DispatchIndirect(buf hal.Buffer, offset uint64) {
	b, ok := buf.(*buffer)
	if !ok {
		return
	}
	pipeline := p.pipeline
	group := p.bindGroups[0]
	p.enc.ops = append(p.enc.ops, func() {
		if offset+12 > uint64(len(b.data)) {
			return
		}
		x := binary.LittleEndian.Uint32(b.data[offset:])
		y := binary.LittleEndian.Uint32(b.data[offset+4:])
		z := binary.LittleEndian.Uint32(b.data[offset+8:])
		executeDispatch(pipeline, group, x, y, z)
	})
}

func (p *computePassEncoder) PushDebugGroup(label string) {
	hal.Logger().Debug("software: debug group", "label", label)
}

func (p *computePassEncoder) PopDebugGroup() {}

func (p *computePassEncoder) InsertDebugMarker(label string) {
	hal.Logger().Debug("software: debug marker", "label", label)
}

func executeDispatch(pipeline *computePipeline, group *bindGroup, x, y, z uint32) {
	if pipeline == nil || pipeline.program == nil || pipeline.program.compute.Dispatch == nil {
		hal.Logger().Debug("software: compute pipeline has no executable callback program, dispatch skipped")
		return
	}
	prog := pipeline.program
	buffers := collectComputeBuffers(group)
	uniforms := prog.decodeUniforms(group)
	for gz := uint32(0); gz < z; gz++ {
		for gy := uint32(0); gy < y; gy++ {
			for gx := uint32(0); gx < x; gx++ {
				prog.compute.Dispatch([3]uint32{gx, gy, gz}, buffers, nil, uniforms)
			}
		}
	}
}

// collectComputeBuffers gathers every buffer bound in the group in
// binding order as raw read-write views.
func collectComputeBuffers(group *bindGroup) []shader.ComputeBuffer {
	if group == nil {
		return nil
	}
	entries := append([]gputypes.BindGroupEntry(nil), group.entries...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Binding < entries[j].Binding })
	var out []shader.ComputeBuffer
	for _, e := range entries {
		if _, ok := e.Resource.(gputypes.BufferBinding); !ok {
			continue
		}
		if data := group.bufferAt(e.Binding); data != nil {
			out = append(out, shader.ComputeBuffer{Data: data})
		}
	}
	return out
}
