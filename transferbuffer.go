package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/container"
)

// TransferDirection tags a transfer buffer as a staging area for uploads
// (host -> device) or downloads (device -> host).
type TransferDirection int

const (
	// TransferBufferUpload stages data the application writes and the
	// device later reads (e.g. a copy pass's source).
	TransferBufferUpload TransferDirection = iota
	// TransferBufferDownload stages data the device writes and the
	// application later reads.
	TransferBufferDownload
)

// TransferBufferDescriptor describes a host-visible staging buffer.
type TransferBufferDescriptor struct {
	Label     string
	Direction TransferDirection
	Size      uint64
}

// transferInstance is one backing hal.Buffer plus the host-visible byte
// slice mirroring it. The mirror is what Map/Unmap actually hand the
// caller — real host-visible mapping of the native buffer is a backend
// capability this neutral layer does not assume, so content moves between
// the mirror and the native buffer via Queue.WriteBuffer/ReadBuffer at
// Unmap/copy-pass time instead.
type transferInstance struct {
	native hal.Buffer
	data   []byte
}

// TransferBuffer is a Buffer container tagged upload or download, with
// host-visible storage mode, used as the staging area for UploadToBuffer/
// UploadToTexture/DownloadFromBuffer/DownloadFromTexture.
type TransferBuffer struct {
	device    *Device
	direction TransferDirection
	size      uint64
	ring      *container.Container[*transferInstance]
	mapped    bool
	released  bool
}

// CreateTransferBuffer creates a host-visible staging buffer for the given
// direction and size.
func (d *Device) CreateTransferBuffer(desc *TransferBufferDescriptor) (*TransferBuffer, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("gpu: transfer buffer descriptor is nil")
	}
	if desc.Size == 0 {
		return nil, fmt.Errorf("gpu: transfer buffer size must be > 0")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	nativeUsage := gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst
	if desc.Direction == TransferBufferUpload {
		nativeUsage |= gputypes.BufferUsageMapWrite
	} else {
		nativeUsage |= gputypes.BufferUsageMapRead
	}

	var createErr error
	ring := container.New(desc.Label, true, func() *transferInstance {
		buf, err := halDevice.CreateBuffer(&hal.BufferDescriptor{
			Label: desc.Label,
			Size:  desc.Size,
			Usage: nativeUsage,
		})
		if err != nil {
			createErr = err
			return nil
		}
		return &transferInstance{native: buf, data: make([]byte, desc.Size)}
	})
	if createErr != nil {
		return nil, fmt.Errorf("gpu: failed to create transfer buffer: %w", createErr)
	}

	return &TransferBuffer{device: d, direction: desc.Direction, size: desc.Size, ring: ring}, nil
}

// Size returns the transfer buffer's byte size.
func (t *TransferBuffer) Size() uint64 { return t.size }

// Direction reports whether this is an upload or download staging buffer.
func (t *TransferBuffer) Direction() TransferDirection { return t.direction }

// active returns the currently-aliased backing instance.
func (t *TransferBuffer) active() *transferInstance {
	if t.ring == nil {
		return nil
	}
	return t.ring.ActiveNative()
}

// raw returns the native hal.Buffer the public handle currently aliases,
// used by copy-pass operations as the source or destination of a transfer.
func (t *TransferBuffer) raw() hal.Buffer {
	inst := t.active()
	if inst == nil {
		return nil
	}
	return inst.native
}

// activeRef returns the tracked reference for the backing instance the
// handle currently aliases, or nil when the transfer buffer has no ring.
func (t *TransferBuffer) activeRef() container.Ref {
	if t == nil || t.ring == nil {
		return nil
	}
	return t.ring.Active()
}

// Cycle advances the transfer buffer to a fresh backing instance when cycle
// is requested and the active instance is tracked by in-flight command
// buffer work. A transfer buffer follows the buffer path: it cycles only
// when the active instance's refcount is above zero.
func (t *TransferBuffer) Cycle(cycle bool) {
	if t.ring == nil {
		return
	}
	t.ring.Cycle(cycle, container.RefCountGTZero[*transferInstance])
}

// MapTransferBuffer maps the buffer for host access, optionally cycling to a
// free backing instance first. Returns the host-visible byte slice the
// application writes to (upload) or reads from (download).
func (d *Device) MapTransferBuffer(t *TransferBuffer, cycle bool) ([]byte, error) {
	if t == nil || t.released {
		return nil, ErrReleased
	}
	t.Cycle(cycle)
	inst := t.active()
	if inst == nil {
		return nil, fmt.Errorf("gpu: transfer buffer has no backing instance")
	}
	t.mapped = true
	return inst.data, nil
}

// UnmapTransferBuffer ends host access. For an upload buffer this flushes
// the host-visible mirror to the native buffer so a subsequent copy-pass
// upload sees the written bytes; for a download buffer it is a no-op (the
// mirror is refreshed by the copy pass, not by Unmap).
func (d *Device) UnmapTransferBuffer(t *TransferBuffer) {
	if t == nil || !t.mapped {
		return
	}
	t.mapped = false
	if t.direction != TransferBufferUpload {
		return
	}
	inst := t.active()
	if inst == nil || d.queue == nil || d.queue.hal == nil {
		return
	}
	d.queue.hal.WriteBuffer(inst.native, 0, inst.data)
}

// SetTransferData is a convenience helper equivalent to
// MapTransferBuffer/copy/UnmapTransferBuffer in one call.
func (d *Device) SetTransferData(t *TransferBuffer, src []byte, offset uint64, cycle bool) error {
	data, err := d.MapTransferBuffer(t, cycle)
	if err != nil {
		return err
	}
	if offset+uint64(len(src)) > uint64(len(data)) {
		return fmt.Errorf("gpu: SetTransferData: %d bytes at offset %d overflows %d-byte transfer buffer", len(src), offset, len(data))
	}
	copy(data[offset:], src)
	d.UnmapTransferBuffer(t)
	return nil
}

// GetTransferData copies size bytes at offset out of the transfer buffer's
// host-visible mirror into dst. Call after a download copy pass has been
// submitted and waited on, so the mirror has been refreshed.
func (d *Device) GetTransferData(t *TransferBuffer, dst []byte, offset uint64) error {
	if t == nil || t.released {
		return ErrReleased
	}
	inst := t.active()
	if inst == nil {
		return fmt.Errorf("gpu: transfer buffer has no backing instance")
	}
	if offset+uint64(len(dst)) > uint64(len(inst.data)) {
		return fmt.Errorf("gpu: GetTransferData: %d bytes at offset %d overflows %d-byte transfer buffer", len(dst), offset, len(inst.data))
	}
	copy(dst, inst.data[offset:])
	return nil
}

// refreshFromDevice pulls the native buffer's current content back into the
// host-visible mirror, called by Queue.Submit once a download copy pass's
// command buffer has been waited on.
func (t *TransferBuffer) refreshFromDevice(q *Queue) {
	if q == nil || q.hal == nil {
		return
	}
	inst := t.active()
	if inst == nil {
		return
	}
	reader, ok := q.hal.(hal.QueueReader)
	if !ok {
		return
	}
	_ = reader.ReadBuffer(inst.native, 0, inst.data)
}

// Release schedules the transfer buffer for destruction. The backing
// instances are freed by the next deferred-destroy sweep once no in-flight
// command buffer references any of them.
func (t *TransferBuffer) Release() {
	if t.released {
		return
	}
	t.released = true
	if t.device == nil {
		t.destroyNow()
		return
	}
	t.device.deferDestroy(t)
	t.device.sweepDisposed()
}

func (t *TransferBuffer) allRetired() bool {
	if t.ring == nil {
		return true
	}
	return t.ring.AllRetired()
}

func (t *TransferBuffer) destroyNow() {
	if t.device == nil || t.ring == nil {
		return
	}
	halDevice := t.device.halDevice()
	if halDevice == nil {
		return
	}
	for _, inst := range t.ring.Ring() {
		if ti := inst.Native; ti != nil && ti.native != nil {
			halDevice.DestroyBuffer(ti.native)
		}
	}
}
