package gpu

import (
	"github.com/gogpu/gpu/core"
	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/container"
)

// Buffer represents a GPU buffer.
type Buffer struct {
	core     *core.Buffer
	device   *Device
	released bool
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 { return b.core.Size() }

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() BufferUsage { return b.core.Usage() }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.core.Label() }

// SetName replaces the buffer's debug label.
func (b *Buffer) SetName(name string) {
	if b.released || b.core == nil {
		return
	}
	b.core.SetLabel(name)
}

// Release schedules the buffer for destruction. The backing instances are
// freed by the next deferred-destroy sweep once no in-flight command buffer
// references any of them.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	if b.device == nil {
		b.core.Destroy()
		return
	}
	b.device.deferDestroy(b)
	b.device.sweepDisposed()
}

func (b *Buffer) allRetired() bool {
	if b.core == nil || b.core.Ring() == nil {
		return true
	}
	return b.core.Ring().AllRetired()
}

func (b *Buffer) destroyNow() {
	b.core.Destroy()
}

// coreBuffer returns the underlying core.Buffer.
func (b *Buffer) coreBuffer() *core.Buffer { return b.core }

// activeRef returns the tracked reference for the backing instance the
// handle currently aliases, or nil when the buffer has no ring.
func (b *Buffer) activeRef() container.Ref {
	if b == nil || b.core == nil || b.core.Ring() == nil {
		return nil
	}
	return b.core.Ring().Active()
}

// halBuffer returns the underlying HAL buffer.
func (b *Buffer) halBuffer() hal.Buffer {
	if b.core == nil || b.device == nil {
		return nil
	}
	if !b.core.HasHAL() {
		return nil
	}
	guard := b.device.core.SnatchLock().Read()
	defer guard.Release()
	return b.core.Raw(guard)
}
