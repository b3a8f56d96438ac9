package gpu

import (
	"github.com/gogpu/gpu/core"
	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/container"
	"github.com/gogpu/gpu/internal/uniform"
)

// CommandEncoder records GPU commands for later submission.
//
// A command encoder is single-use. After calling Finish(), the encoder
// cannot be used again. Call Device.CreateCommandEncoder() to create a new one.
//
// NOT thread-safe - do not use from multiple goroutines.
type CommandEncoder struct {
	core     *core.CoreCommandEncoder
	device   *Device
	released bool

	// copyPass is the active COPY-phase encoder, if any.
	copyPass *CopyPassEncoder

	// transferDownloads records every download transfer buffer touched by
	// a copy pass on this encoder, so Queue.Submit can refresh their
	// host-visible mirrors once the GPU work completes.
	transferDownloads []*TransferBuffer

	// uniformAllocators/uniformDirty implement the per-(stage,slot) bump
	// allocator and its need-rebind shadow table.
	uniformAllocators map[uniformKey]*uniform.Allocator
	uniformDirty      map[uniformKey]bool
	// trackedUniformAllocators is every allocator acquired by this
	// command buffer, including ones replaced by overflow, returned to
	// the pool on cleanup.
	trackedUniformAllocators []*uniform.Allocator

	// presentWindows is every window whose swapchain texture was acquired
	// through this encoder, presented by Queue.Submit once its command
	// buffer's GPU work completes.
	presentWindows []*ClaimedWindow

	// tracked is the set of backing instances this command buffer
	// references. Each entry's refcount was incremented exactly once at
	// first use and is decremented when the command buffer is cleaned
	// after submission; cycling consults these counts to decide whether
	// the active instance is safe to hand back to the caller.
	tracked    []container.Ref
	trackedSet map[container.Ref]struct{}

	// debugDepth counts open debug groups so an unbalanced pop can be
	// dropped instead of corrupting the native marker stack.
	debugDepth int
}

// track records a backing-instance reference for the lifetime of this
// command buffer, incrementing its refcount on first sight. Tracking the
// same instance repeatedly is a no-op: the count reflects command buffers,
// not individual commands.
func (e *CommandEncoder) track(ref container.Ref) {
	if ref == nil {
		return
	}
	if e.trackedSet == nil {
		e.trackedSet = make(map[container.Ref]struct{})
	}
	if _, seen := e.trackedSet[ref]; seen {
		return
	}
	e.trackedSet[ref] = struct{}{}
	ref.Track()
	e.tracked = append(e.tracked, ref)
}

// InsertDebugLabel records a standalone debug label. Legal in every pass
// phase; outside a pass it is only visible to the shared logger since the
// neutral command-buffer surface has no native marker stream to write to.
func (e *CommandEncoder) InsertDebugLabel(label string) {
	if e.released {
		return
	}
	if marker, ok := e.activeDebugTarget(); ok {
		marker.InsertDebugMarker(label)
	}
}

// PushDebugGroup opens a named debug group enclosing subsequent commands.
func (e *CommandEncoder) PushDebugGroup(label string) {
	if e.released {
		return
	}
	e.debugDepth++
	if marker, ok := e.activeDebugTarget(); ok {
		marker.PushDebugGroup(label)
	}
}

// PopDebugGroup closes the innermost open debug group. A pop without a
// matching push is logged and dropped.
func (e *CommandEncoder) PopDebugGroup() {
	if e.released {
		return
	}
	if e.debugDepth == 0 {
		hal.Logger().Error("gpu: PopDebugGroup without matching PushDebugGroup")
		return
	}
	e.debugDepth--
	if marker, ok := e.activeDebugTarget(); ok {
		marker.PopDebugGroup()
	}
}

// activeDebugTarget returns the native marker sink for the current pass,
// if the backend's active pass encoder exposes one.
func (e *CommandEncoder) activeDebugTarget() (hal.DebugMarkerEncoder, bool) {
	if e.core == nil {
		return nil, false
	}
	if rp := e.core.ActiveRenderPass(); rp != nil {
		marker, ok := rp.(hal.DebugMarkerEncoder)
		return marker, ok
	}
	if cp := e.core.ActiveComputePass(); cp != nil {
		marker, ok := cp.(hal.DebugMarkerEncoder)
		return marker, ok
	}
	return nil, false
}

// trackDownload records tb as needing its host-visible mirror refreshed
// after this encoder's command buffer is submitted and waited on.
func (e *CommandEncoder) trackDownload(tb *TransferBuffer) {
	e.transferDownloads = append(e.transferDownloads, tb)
}

// BeginRenderPass begins a render pass.
// The returned RenderPassEncoder records draw commands.
// Call RenderPassEncoder.End() when done.
func (e *CommandEncoder) BeginRenderPass(desc *RenderPassDescriptor) (*RenderPassEncoder, error) {
	if e.released {
		return nil, ErrReleased
	}

	coreDesc := convertRenderPassDesc(desc)

	corePass, err := e.core.BeginRenderPass(coreDesc)
	if err != nil {
		return nil, err
	}

	// An attachment is a write into its texture's active instance; the
	// command buffer references it until cleanup.
	if desc != nil {
		for _, ca := range desc.ColorAttachments {
			if ca.View != nil {
				e.track(ca.View.texture.activeRef())
			}
			if ca.ResolveTarget != nil {
				e.track(ca.ResolveTarget.texture.activeRef())
			}
		}
		if ds := desc.DepthStencilAttachment; ds != nil && ds.View != nil {
			e.track(ds.View.texture.activeRef())
		}
	}

	return &RenderPassEncoder{core: corePass, encoder: e}, nil
}

// BeginComputePass begins a compute pass.
// The returned ComputePassEncoder records dispatch commands.
// Call ComputePassEncoder.End() when done.
func (e *CommandEncoder) BeginComputePass(desc *ComputePassDescriptor) (*ComputePassEncoder, error) {
	if e.released {
		return nil, ErrReleased
	}

	var coreDesc *core.CoreComputePassDescriptor
	if desc != nil {
		coreDesc = &core.CoreComputePassDescriptor{Label: desc.Label}
	}

	corePass, err := e.core.BeginComputePass(coreDesc)
	if err != nil {
		return nil, err
	}

	return &ComputePassEncoder{core: corePass, encoder: e}, nil
}

// CopyBufferToBuffer copies data between buffers.
func (e *CommandEncoder) CopyBufferToBuffer(src *Buffer, srcOffset uint64, dst *Buffer, dstOffset uint64, size uint64) {
	if e.released || src == nil || dst == nil {
		return
	}
	raw := e.core.RawEncoder()
	if raw == nil {
		return
	}
	halSrc := src.halBuffer()
	halDst := dst.halBuffer()
	if halSrc == nil || halDst == nil {
		return
	}
	e.track(src.activeRef())
	e.track(dst.activeRef())
	raw.CopyBufferToBuffer(halSrc, halDst, []hal.BufferCopy{
		{SrcOffset: srcOffset, DstOffset: dstOffset, Size: size},
	})
}

// Finish completes command recording and returns a CommandBuffer.
// After calling Finish(), the encoder cannot be used again.
func (e *CommandEncoder) Finish() (*CommandBuffer, error) {
	if e.released {
		return nil, ErrReleased
	}
	e.released = true

	coreCmdBuffer, err := e.core.Finish()
	if err != nil {
		return nil, err
	}

	return &CommandBuffer{
		core:                     coreCmdBuffer,
		device:                   e.device,
		transferDownloads:        e.transferDownloads,
		trackedUniformAllocators: e.trackedUniformAllocators,
		presentWindows:           e.presentWindows,
		tracked:                  e.tracked,
	}, nil
}

// convertRenderPassDesc converts a public descriptor to core descriptor.
func convertRenderPassDesc(desc *RenderPassDescriptor) *core.RenderPassDescriptor {
	if desc == nil {
		return &core.RenderPassDescriptor{}
	}

	coreDesc := &core.RenderPassDescriptor{
		Label: desc.Label,
	}

	for _, ca := range desc.ColorAttachments {
		coreCA := core.RenderPassColorAttachment{
			LoadOp:     ca.LoadOp,
			StoreOp:    ca.StoreOp,
			ClearValue: ca.ClearValue,
		}
		if ca.View != nil {
			coreCA.View = ca.View.hal
		}
		if ca.ResolveTarget != nil {
			coreCA.ResolveTarget = ca.ResolveTarget.hal
		}
		coreDesc.ColorAttachments = append(coreDesc.ColorAttachments, coreCA)
	}

	if desc.DepthStencilAttachment != nil {
		ds := desc.DepthStencilAttachment
		coreDS := &core.RenderPassDepthStencilAttachment{
			DepthLoadOp:       ds.DepthLoadOp,
			DepthStoreOp:      ds.DepthStoreOp,
			DepthClearValue:   ds.DepthClearValue,
			DepthReadOnly:     ds.DepthReadOnly,
			StencilLoadOp:     ds.StencilLoadOp,
			StencilStoreOp:    ds.StencilStoreOp,
			StencilClearValue: ds.StencilClearValue,
			StencilReadOnly:   ds.StencilReadOnly,
		}
		if ds.View != nil {
			coreDS.View = ds.View.hal
		}
		coreDesc.DepthStencilAttachment = coreDS
	}

	return coreDesc
}

// CommandBuffer holds recorded GPU commands ready for submission.
// Created by CommandEncoder.Finish().
type CommandBuffer struct {
	core                     *core.CoreCommandBuffer
	device                   *Device
	transferDownloads        []*TransferBuffer
	trackedUniformAllocators []*uniform.Allocator
	presentWindows           []*ClaimedWindow
	tracked                  []container.Ref
}

// untrackAll releases every backing-instance reference this command buffer
// holds. Called once during post-submission cleanup; afterwards the
// instances are again candidates for cycling and deferred destruction.
func (cb *CommandBuffer) untrackAll() {
	for _, ref := range cb.tracked {
		ref.Untrack()
	}
	cb.tracked = nil
}

// presentAcquiredWindows presents every swapchain texture acquired through
// this command buffer's encoder, then clears the per-frame drawable so a
// stale texture can't be reused by a later Acquire call.
func (cb *CommandBuffer) presentAcquiredWindows() {
	for _, w := range cb.presentWindows {
		if w.drawable == nil {
			continue
		}
		_ = w.surface.Present(w.drawable)
		w.drawable = nil
		w.drawableTexture = nil
	}
}

// halBuffer returns the underlying HAL command buffer.
func (cb *CommandBuffer) halBuffer() hal.CommandBuffer {
	if cb.core == nil {
		return nil
	}
	return cb.core.Raw()
}
