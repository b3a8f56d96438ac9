package gpu

import (
	"github.com/gogpu/gpu/core"
)

// RenderPassEncoder records draw commands within a render pass.
//
// Created by CommandEncoder.BeginRenderPass().
// Must be ended with End() before the CommandEncoder can be finished.
//
// NOT thread-safe.
type RenderPassEncoder struct {
	core    *core.CoreRenderPassEncoder
	encoder *CommandEncoder
}

// SetPipeline sets the active render pipeline.
func (p *RenderPassEncoder) SetPipeline(pipeline *RenderPipeline) {
	if pipeline == nil {
		return
	}
	p.core.SetPipeline(pipeline.hal)
}

// SetBindGroup sets a bind group for the given index.
func (p *RenderPassEncoder) SetBindGroup(index uint32, group *BindGroup, offsets []uint32) {
	if group == nil {
		return
	}
	p.core.SetBindGroup(index, group.hal, offsets)
}

// SetVertexBuffer sets a vertex buffer for the given slot.
func (p *RenderPassEncoder) SetVertexBuffer(slot uint32, buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	p.encoder.track(buffer.activeRef())
	p.core.SetVertexBuffer(slot, buffer.coreBuffer(), offset)
}

// SetIndexBuffer sets the index buffer.
func (p *RenderPassEncoder) SetIndexBuffer(buffer *Buffer, format IndexFormat, offset uint64) {
	if buffer == nil {
		return
	}
	p.encoder.track(buffer.activeRef())
	p.core.SetIndexBuffer(buffer.coreBuffer(), format, offset)
}

// SetViewport sets the viewport transformation.
func (p *RenderPassEncoder) SetViewport(x, y, width, height, minDepth, maxDepth float32) {
	p.core.SetViewport(x, y, width, height, minDepth, maxDepth)
}

// SetScissorRect sets the scissor rectangle for clipping.
func (p *RenderPassEncoder) SetScissorRect(x, y, width, height uint32) {
	p.core.SetScissorRect(x, y, width, height)
}

// SetBlendConstant sets the blend constant color.
func (p *RenderPassEncoder) SetBlendConstant(color *Color) {
	p.core.SetBlendConstant(color)
}

// SetStencilReference sets the stencil reference value.
func (p *RenderPassEncoder) SetStencilReference(reference uint32) {
	p.core.SetStencilReference(reference)
}

// flushVertexFragmentUniforms binds any dirty vertex/fragment uniform
// allocators before a draw; groups whose flag is clear are left untouched.
func (p *RenderPassEncoder) flushVertexFragmentUniforms() {
	if p.encoder == nil {
		return
	}
	p.encoder.flushUniformStage(uniformStageVertex)
	p.encoder.flushUniformStage(uniformStageFragment)
}

// Draw draws primitives.
func (p *RenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.flushVertexFragmentUniforms()
	p.core.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexed draws indexed primitives.
func (p *RenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.flushVertexFragmentUniforms()
	p.core.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

// DrawIndirect draws primitives with GPU-generated parameters.
func (p *RenderPassEncoder) DrawIndirect(buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	p.encoder.track(buffer.activeRef())
	p.flushVertexFragmentUniforms()
	p.core.DrawIndirect(buffer.coreBuffer(), offset)
}

// DrawIndexedIndirect draws indexed primitives with GPU-generated parameters.
func (p *RenderPassEncoder) DrawIndexedIndirect(buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	p.encoder.track(buffer.activeRef())
	p.flushVertexFragmentUniforms()
	p.core.DrawIndexedIndirect(buffer.coreBuffer(), offset)
}

// MultiDrawIndirect issues drawCount indirect draws whose arguments live at
// offset, offset+stride, offset+2*stride, ... within buffer. No backend
// behind this layer exposes a native multi-draw entry point, so the draws
// are emitted as drawCount single indirect draws.
func (p *RenderPassEncoder) MultiDrawIndirect(buffer *Buffer, offset uint64, drawCount, stride uint32) {
	if buffer == nil || drawCount == 0 {
		return
	}
	if stride == 0 {
		stride = IndirectDrawArgsSize
	}
	p.encoder.track(buffer.activeRef())
	p.flushVertexFragmentUniforms()
	for i := uint32(0); i < drawCount; i++ {
		p.core.DrawIndirect(buffer.coreBuffer(), offset+uint64(i)*uint64(stride))
	}
}

// MultiDrawIndexedIndirect is MultiDrawIndirect for indexed draws.
func (p *RenderPassEncoder) MultiDrawIndexedIndirect(buffer *Buffer, offset uint64, drawCount, stride uint32) {
	if buffer == nil || drawCount == 0 {
		return
	}
	if stride == 0 {
		stride = IndexedIndirectDrawArgsSize
	}
	p.encoder.track(buffer.activeRef())
	p.flushVertexFragmentUniforms()
	for i := uint32(0); i < drawCount; i++ {
		p.core.DrawIndexedIndirect(buffer.coreBuffer(), offset+uint64(i)*uint64(stride))
	}
}

// InsertDebugLabel records a standalone debug label in the pass.
func (p *RenderPassEncoder) InsertDebugLabel(label string) {
	p.encoder.InsertDebugLabel(label)
}

// PushDebugGroup opens a named debug group in the pass.
func (p *RenderPassEncoder) PushDebugGroup(label string) {
	p.encoder.PushDebugGroup(label)
}

// PopDebugGroup closes the innermost open debug group.
func (p *RenderPassEncoder) PopDebugGroup() {
	p.encoder.PopDebugGroup()
}

// End ends the render pass.
// After this call, the encoder cannot be used again.
func (p *RenderPassEncoder) End() error {
	return p.core.End()
}
