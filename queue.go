package gpu

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/fencepool"
)

// defaultSubmitTimeout is the maximum time to wait for GPU work to complete
// after submitting command buffers. 30 seconds accommodates heavy compute workloads.
const defaultSubmitTimeout = 30 * time.Second

// Queue handles command submission and data transfers.
type Queue struct {
	hal        hal.Queue
	halDevice  hal.Device
	fence      hal.Fence
	fenceValue atomic.Uint64
	device     *Device
	fences     *fencepool.Pool
}

// Submit submits command buffers for execution.
// This is a synchronous operation - it blocks until the GPU has completed all submitted work.
func (q *Queue) Submit(commandBuffers ...*CommandBuffer) error {
	if q.hal == nil {
		return fmt.Errorf("gpu: queue not available")
	}

	halBuffers := make([]hal.CommandBuffer, len(commandBuffers))
	for i, cb := range commandBuffers {
		halBuffers[i] = cb.halBuffer()
	}

	nextValue := q.fenceValue.Add(1)
	err := q.hal.Submit(halBuffers, q.fence, nextValue)
	if err != nil {
		return fmt.Errorf("gpu: submit failed: %w", err)
	}

	_, err = q.halDevice.Wait(q.fence, nextValue, defaultSubmitTimeout)
	if err != nil {
		return fmt.Errorf("gpu: wait failed: %w", err)
	}

	for _, cb := range commandBuffers {
		for _, tb := range cb.transferDownloads {
			tb.refreshFromDevice(q)
		}
		cb.releaseUniformAllocators()
		cb.presentAcquiredWindows()
		cb.untrackAll()
	}

	if freer, ok := q.halDevice.(hal.CommandBufferFreer); ok {
		for _, cb := range commandBuffers {
			if raw := cb.halBuffer(); raw != nil {
				freer.FreeCommandBuffer(raw)
			}
		}
	}

	if q.device != nil {
		q.device.sweepDisposed()
	}

	return nil
}

// WriteBuffer writes data to a buffer.
func (q *Queue) WriteBuffer(buffer *Buffer, offset uint64, data []byte) error {
	if q.hal == nil || buffer == nil {
		return fmt.Errorf("gpu: WriteBuffer: queue or buffer is nil")
	}

	halBuffer := buffer.halBuffer()
	if halBuffer == nil {
		return fmt.Errorf("gpu: WriteBuffer: no HAL buffer")
	}

	q.hal.WriteBuffer(halBuffer, offset, data)
	return nil
}

// ReadBuffer reads data from a GPU buffer back to the host. Only backends
// that implement hal.QueueReader support this without an explicit transfer
// buffer and copy pass.
func (q *Queue) ReadBuffer(buffer *Buffer, offset uint64, data []byte) error {
	if q.hal == nil {
		return fmt.Errorf("gpu: queue not available")
	}
	if buffer == nil {
		return fmt.Errorf("gpu: buffer is nil")
	}

	halBuffer := buffer.halBuffer()
	if halBuffer == nil {
		return ErrReleased
	}

	reader, ok := q.hal.(hal.QueueReader)
	if !ok {
		return fmt.Errorf("gpu: ReadBuffer: backend does not support synchronous buffer readback, use a transfer buffer")
	}

	return reader.ReadBuffer(halBuffer, offset, data)
}

// Fence is an application-visible completion signal for a Submit call,
// acquired from a recyclable pool rather than allocated per submission.
type Fence struct {
	raw  *fencepool.Fence
	pool *fencepool.Pool
}

// QueryFence reports whether the submission this fence was returned from has
// completed. Never blocks.
func (f *Fence) QueryFence() bool {
	if f == nil || f.raw == nil {
		return true
	}
	return f.raw.Complete()
}

// ReleaseFence returns the fence to its pool for reuse. The caller must not
// use the fence again afterward.
func (f *Fence) ReleaseFence() {
	if f == nil || f.raw == nil || f.pool == nil {
		return
	}
	f.pool.Release(f.raw)
	f.raw = nil
}

// SubmitAndAcquireFence submits command buffers like Submit, but also hands
// the caller a recyclable Fence for polling completion without re-waiting.
// Submit itself is synchronous, so the returned fence is already signaled;
// callers that want fire-and-forget semantics should prefer Submit.
func (q *Queue) SubmitAndAcquireFence(commandBuffers ...*CommandBuffer) (*Fence, error) {
	if err := q.Submit(commandBuffers...); err != nil {
		return nil, err
	}
	if q.fences == nil {
		q.fences = fencepool.NewPool()
	}
	raw := q.fences.Acquire()
	raw.Signal()
	return &Fence{raw: raw, pool: q.fences}, nil
}

// WaitForFences blocks until the named fences are complete: all of them
// when waitAll is true, at least one otherwise. Nil fences count as
// complete. There is no timeout; callers needing one should poll
// QueryFence themselves.
func (d *Device) WaitForFences(waitAll bool, fences ...*Fence) {
	if len(fences) == 0 {
		return
	}
	for {
		done := 0
		for _, f := range fences {
			if f.QueryFence() {
				done++
			}
		}
		if waitAll && done == len(fences) {
			return
		}
		if !waitAll && done > 0 {
			return
		}
		time.Sleep(50 * time.Microsecond)
	}
}

// release cleans up queue resources.
func (q *Queue) release() {
	if q.fence != nil && q.halDevice != nil {
		q.halDevice.DestroyFence(q.fence)
		q.fence = nil
	}
}
