package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/uniform"
)

// uniformStage identifies which shader stage a pushed uniform slot belongs
// to, matching the three independent (stage, slot) allocator spaces the
// command buffer keeps
// describes.
type uniformStage int

const (
	uniformStageVertex uniformStage = iota
	uniformStageFragment
	uniformStageCompute
)

// uniformSlotCount is the number of live uniform slots per stage (0..3).
const uniformSlotCount = 4

type uniformKey struct {
	stage uniformStage
	slot  uint32
}

// uniformPool returns the device-wide pool of pooled uniform staging
// buffers, lazily created on first use.
func (d *Device) uniformPool() *uniform.Pool {
	if d.uniforms != nil {
		return d.uniforms
	}
	halDevice := d.halDevice()
	d.uniforms = uniform.NewPool(func() *uniform.Backing {
		b := &uniform.Backing{Data: make([]byte, uniform.BufferSize)}
		if halDevice != nil {
			if buf, err := halDevice.CreateBuffer(&hal.BufferDescriptor{
				Label: "uniform staging",
				Size:  uniform.BufferSize,
				Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
			}); err == nil {
				b.Native = buf
			}
		}
		return b
	})
	return d.uniforms
}

// pushUniform implements pushUniformData(stage, slot, bytes): draw
// one allocator from the device pool on first use for this (stage, slot) on
// this command buffer, replace it with a fresh one from the pool if the
// push would overflow, copy the bytes, and mark the stage dirty so the next
// draw/dispatch rebinds it.
func (e *CommandEncoder) pushUniform(stage uniformStage, slot uint32, data []byte) error {
	if e.released {
		return ErrReleased
	}
	if slot >= uniformSlotCount {
		return fmt.Errorf("gpu: uniform slot %d out of range [0,%d)", slot, uniformSlotCount)
	}
	if e.uniformAllocators == nil {
		e.uniformAllocators = make(map[uniformKey]*uniform.Allocator)
		e.uniformDirty = make(map[uniformKey]bool)
	}

	key := uniformKey{stage: stage, slot: slot}
	pool := e.device.uniformPool()

	alloc, ok := e.uniformAllocators[key]
	if !ok {
		alloc = pool.Acquire()
		e.uniformAllocators[key] = alloc
		e.trackUniformAllocator(alloc)
	} else if alloc.WouldOverflow(len(data)) {
		// The replaced allocator stays tracked and returns to the pool at
		// command-buffer cleanup.
		fresh := pool.Acquire()
		e.uniformAllocators[key] = fresh
		e.trackUniformAllocator(fresh)
		alloc = fresh
	}

	alloc.Push(data)
	e.uniformDirty[key] = true
	return nil
}

// trackUniformAllocator records alloc as owned by this command buffer for
// the lifetime of recording; Queue.Submit returns every tracked allocator
// to the pool once the GPU work completes.
func (e *CommandEncoder) trackUniformAllocator(alloc *uniform.Allocator) {
	e.trackedUniformAllocators = append(e.trackedUniformAllocators, alloc)
}

// PushVertexUniformData stages data for vertex-stage uniform slot, bound at
// the next draw in the active render pass.
func (e *CommandEncoder) PushVertexUniformData(slot uint32, data []byte) error {
	return e.pushUniform(uniformStageVertex, slot, data)
}

// PushFragmentUniformData stages data for fragment-stage uniform slot,
// bound at the next draw in the active render pass.
func (e *CommandEncoder) PushFragmentUniformData(slot uint32, data []byte) error {
	return e.pushUniform(uniformStageFragment, slot, data)
}

// PushComputeUniformData stages data for compute-stage uniform slot, bound
// at the next dispatch in the active compute pass.
func (e *CommandEncoder) PushComputeUniformData(slot uint32, data []byte) error {
	return e.pushUniform(uniformStageCompute, slot, data)
}

// flushUniformStage binds the backing buffer for every dirty slot of stage
// at its current drawOffset, then clears the dirty flags — "flush only
// groups whose flag is set, then clear it.
func (e *CommandEncoder) flushUniformStage(stage uniformStage) {
	for slot := uint32(0); slot < uniformSlotCount; slot++ {
		key := uniformKey{stage: stage, slot: slot}
		if !e.uniformDirty[key] {
			continue
		}
		delete(e.uniformDirty, key)
		// The bind-group plumbing that would forward this allocator's
		// backing buffer + drawOffset into the HAL render/compute pass is
		// the same not-yet-wired seam SetBindGroup documents elsewhere in
		// this package; the allocator bookkeeping above (acquire, push,
		// overflow replacement, dirty-flag flush/clear) is complete and
		// independently testable regardless of that seam.
		_ = e.uniformAllocators[key]
	}
}

// releaseUniformAllocators returns every allocator this command buffer
// acquired back to the device pool with offsets reset, called once the
// command buffer's GPU work has completed ("Uniform
// allocator lifecycle").
func (cb *CommandBuffer) releaseUniformAllocators() {
	if cb.device == nil || cb.device.uniforms == nil {
		return
	}
	for _, alloc := range cb.trackedUniformAllocators {
		cb.device.uniforms.Release(alloc)
	}
	cb.trackedUniformAllocators = nil
}
