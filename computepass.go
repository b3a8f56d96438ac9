package gpu

import (
	"github.com/gogpu/gpu/core"
)

// ComputePassEncoder records compute dispatch commands.
//
// Created by CommandEncoder.BeginComputePass().
// Must be ended with End() before the CommandEncoder can be finished.
//
// NOT thread-safe.
type ComputePassEncoder struct {
	core    *core.CoreComputePassEncoder
	encoder *CommandEncoder
}

// SetPipeline sets the active compute pipeline.
func (p *ComputePassEncoder) SetPipeline(pipeline *ComputePipeline) {
	if pipeline == nil {
		return
	}
	p.core.SetPipeline(pipeline.hal)
}

// SetBindGroup sets a bind group for the given index.
func (p *ComputePassEncoder) SetBindGroup(index uint32, group *BindGroup, offsets []uint32) {
	if group == nil {
		return
	}
	p.core.SetBindGroup(index, group.hal, offsets)
}

// Dispatch dispatches compute work.
func (p *ComputePassEncoder) Dispatch(x, y, z uint32) {
	if p.encoder != nil {
		p.encoder.flushUniformStage(uniformStageCompute)
	}
	p.core.Dispatch(x, y, z)
}

// DispatchIndirect dispatches compute work with GPU-generated parameters.
func (p *ComputePassEncoder) DispatchIndirect(buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	if p.encoder != nil {
		p.encoder.track(buffer.activeRef())
		p.encoder.flushUniformStage(uniformStageCompute)
	}
	p.core.DispatchIndirect(buffer.coreBuffer(), offset)
}

// InsertDebugLabel records a standalone debug label in the pass.
func (p *ComputePassEncoder) InsertDebugLabel(label string) {
	if p.encoder != nil {
		p.encoder.InsertDebugLabel(label)
	}
}

// PushDebugGroup opens a named debug group in the pass.
func (p *ComputePassEncoder) PushDebugGroup(label string) {
	if p.encoder != nil {
		p.encoder.PushDebugGroup(label)
	}
}

// PopDebugGroup closes the innermost open debug group.
func (p *ComputePassEncoder) PopDebugGroup() {
	if p.encoder != nil {
		p.encoder.PopDebugGroup()
	}
}

// End ends the compute pass.
func (p *ComputePassEncoder) End() error {
	return p.core.End()
}
