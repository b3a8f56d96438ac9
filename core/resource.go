package core

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/container"
	"github.com/gogpu/gputypes"
)

// Adapter represents a physical GPU adapter. Adapters backed by a real HAL
// backend carry halAdapter/halCapabilities; mock adapters (no hardware found)
// leave them nil.
type Adapter struct {
	// Info contains information about the adapter.
	Info gputypes.AdapterInfo
	// Features contains the features supported by the adapter.
	Features gputypes.Features
	// Limits contains the resource limits of the adapter.
	Limits gputypes.Limits
	// Backend identifies which graphics backend this adapter uses.
	Backend gputypes.Backend

	halAdapter      hal.Adapter
	halCapabilities *hal.Capabilities
}

// HasHAL reports whether this adapter is backed by a real HAL backend.
func (a *Adapter) HasHAL() bool { return a.halAdapter != nil }

// HALAdapter returns the backing HAL adapter. Nil for mock adapters.
func (a *Adapter) HALAdapter() hal.Adapter { return a.halAdapter }

// Device represents a logical GPU device. Devices opened through a real HAL
// backend hold their native hal.Device behind a Snatchable so deferred
// destruction (ReleaseDevice et al.) can tear it down exactly once while
// resources still referencing it observe a clean nil.
type Device struct {
	// AdapterRef is the adapter this device was created from.
	AdapterRef *Adapter
	// Label is a debug label for the device.
	Label string
	// Features contains the features enabled on this device.
	Features gputypes.Features
	// Limits contains the resource limits of this device.
	Limits gputypes.Limits

	raw        *Snatchable[hal.Device]
	snatchLock *SnatchLock
	valid      atomic.Bool
	queue      *Queue

	// errorScopeManager backs Push/PopErrorScope, created lazily by
	// errorScopes().
	errorScopeManager *ErrorScopeManager
}

// NewDevice wraps an opened hal.Device in a HAL-backed Device.
func NewDevice(halDevice hal.Device, adapter *Adapter, features gputypes.Features, limits gputypes.Limits, label string) *Device {
	d := &Device{
		AdapterRef: adapter,
		Label:      label,
		Features:   features,
		Limits:     limits,
		raw:        NewSnatchable(halDevice),
		snatchLock: NewSnatchLock(),
	}
	d.valid.Store(true)
	return d
}

// SnatchLock returns the device-global lock coordinating resource
// destruction against concurrent access of its HAL backing objects.
func (d *Device) SnatchLock() *SnatchLock { return d.snatchLock }

// HasHAL reports whether this device is backed by a real HAL backend.
func (d *Device) HasHAL() bool { return d.raw != nil }

// Raw returns the backing hal.Device, or nil once the device has been
// destroyed. The caller must hold a SnatchGuard from SnatchLock().Read().
func (d *Device) Raw(guard *SnatchGuard) hal.Device {
	if d.raw == nil {
		return nil
	}
	v := d.raw.Get(guard)
	if v == nil {
		return nil
	}
	return *v
}

// SetAssociatedQueue records the queue created alongside this device.
func (d *Device) SetAssociatedQueue(q *Queue) { d.queue = q }

// AssociatedQueue returns the queue recorded at device creation, or nil.
func (d *Device) AssociatedQueue() *Queue { return d.queue }

// checkValid returns ErrDeviceDestroyed once Destroy has run, so creation
// paths can fail fast instead of dereferencing a snatched hal.Device.
func (d *Device) checkValid() error {
	if !d.valid.Load() {
		return ErrDeviceDestroyed
	}
	return nil
}

// Destroy snatches and releases the backing hal.Device exactly once.
func (d *Device) Destroy() {
	if !d.valid.CompareAndSwap(true, false) {
		return
	}
	if d.raw == nil {
		return
	}
	guard := d.snatchLock.Write()
	defer guard.Release()
	if v := d.raw.Snatch(guard); v != nil {
		(*v).Destroy()
	}
}

// Queue represents a command queue for a device.
type Queue struct {
	// Label is a debug label for the queue.
	Label string
}

// Buffer represents a GPU buffer: a device-neutral handle wrapping a ring
// of backing hal.Buffer instances. Cycling lets a caller write to the
// buffer from a new instance while command buffers still in flight keep
// referencing the old one, instead of blocking on a fence wait.
type Buffer struct {
	label string
	size  uint64
	usage gputypes.BufferUsage

	device      *Device
	ring        *container.Container[hal.Buffer]
	mapState    BufferMapState
	initialized bool
}

// SetLabel replaces the buffer's debug label, including the one carried by
// its backing-instance ring.
func (b *Buffer) SetLabel(label string) {
	b.label = label
	if b.ring != nil {
		b.ring.Label = label
	}
}

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// Size returns the buffer size in bytes, as requested by the caller (not
// the backend-aligned size actually allocated).
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.usage }

// Device returns the parent device.
func (b *Buffer) Device() *Device { return b.device }

// BufferMapState tracks a buffer's CPU-mapping lifecycle.
type BufferMapState int

const (
	// BufferMapStateIdle means the buffer is not mapped.
	BufferMapStateIdle BufferMapState = iota
	// BufferMapStatePending means a map request is outstanding.
	BufferMapStatePending
	// BufferMapStateMapped means the buffer is currently mapped for CPU access.
	BufferMapStateMapped
)

// MapState returns the buffer's current map state.
func (b *Buffer) MapState() BufferMapState { return b.mapState }

// SetMapState updates the buffer's map state.
func (b *Buffer) SetMapState(state BufferMapState) { b.mapState = state }

// IsInitialized reports whether the given byte range has been written.
// Tracking is whole-buffer: once any write marks part of the buffer
// initialized, the whole buffer reads as initialized.
func (b *Buffer) IsInitialized(_, _ uint64) bool { return b.initialized }

// MarkInitialized records that the given byte range has been written.
func (b *Buffer) MarkInitialized(_, _ uint64) { b.initialized = true }

// validBufferUsageBits is the union of every usage flag this runtime knows
// about; any other bit set in a descriptor is rejected as invalid.
const validBufferUsageBits = gputypes.BufferUsageMapRead | gputypes.BufferUsageMapWrite |
	gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst |
	gputypes.BufferUsageIndex | gputypes.BufferUsageVertex |
	gputypes.BufferUsageUniform | gputypes.BufferUsageStorage |
	gputypes.BufferUsageIndirect | gputypes.BufferUsageQueryResolve

// alignBufferSize rounds n up to a 4-byte boundary, the minimum alignment
// every backend in this runtime requires for buffer allocations.
func alignBufferSize(n uint64) uint64 {
	return (n + 3) &^ 3
}

// CreateBuffer allocates a backend buffer and wraps it in a cycling
// container rooted at this device.
func (d *Device) CreateBuffer(desc *gputypes.BufferDescriptor) (*Buffer, error) {
	if !d.valid.Load() {
		return nil, ErrDeviceDestroyed
	}
	if desc == nil {
		return nil, fmt.Errorf("core: buffer descriptor is nil")
	}
	if desc.Size == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorZeroSize, Label: desc.Label}
	}
	if d.Limits.MaxBufferSize != 0 && desc.Size > d.Limits.MaxBufferSize {
		return nil, &CreateBufferError{
			Kind:          CreateBufferErrorMaxBufferSize,
			Label:         desc.Label,
			RequestedSize: desc.Size,
			MaxSize:       d.Limits.MaxBufferSize,
		}
	}
	if desc.Usage == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorEmptyUsage, Label: desc.Label}
	}
	if desc.Usage&^validBufferUsageBits != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorInvalidUsage, Label: desc.Label}
	}
	if desc.Usage&gputypes.BufferUsageMapRead != 0 && desc.Usage&gputypes.BufferUsageMapWrite != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorMapReadWriteExclusive, Label: desc.Label}
	}

	guard := d.snatchLock.Read()
	defer guard.Release()

	halDevice := d.Raw(guard)
	if halDevice == nil {
		return nil, ErrDeviceLost
	}

	halDesc := &hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             alignBufferSize(desc.Size),
		Usage:            desc.Usage,
		MappedAtCreation: desc.MappedAtCreation,
	}

	var createErr error
	ring := container.New(desc.Label, true, func() hal.Buffer {
		b, err := halDevice.CreateBuffer(halDesc)
		if err != nil {
			createErr = err
		}
		return b
	})
	if createErr != nil {
		return nil, &CreateBufferError{Kind: CreateBufferErrorHAL, Label: desc.Label, HALError: createErr}
	}

	buffer := &Buffer{
		label:  desc.Label,
		size:   desc.Size,
		usage:  desc.Usage,
		device: d,
		ring:   ring,
	}
	if desc.MappedAtCreation {
		buffer.mapState = BufferMapStateMapped
		buffer.initialized = true
	}
	return buffer, nil
}

// HasHAL reports whether this buffer owns a backing ring of HAL instances.
func (b *Buffer) HasHAL() bool { return b.ring != nil }

// Raw returns the hal.Buffer the public handle currently aliases.
func (b *Buffer) Raw(_ *SnatchGuard) hal.Buffer {
	if b.ring == nil {
		return nil
	}
	return b.ring.ActiveNative()
}

// Cycle advances the buffer to a fresh backing instance when the active one
// is still referenced by an in-flight command buffer, per the buffer-path
// refTest (gated on refcount, unlike the texture path's unconditional one).
func (b *Buffer) Cycle(mustCycle bool) {
	if b.ring == nil {
		return
	}
	b.ring.Cycle(mustCycle, container.RefCountGTZero[hal.Buffer])
}

// Ring exposes the backing instance ring for command-buffer tracking and
// the destroy sweep.
func (b *Buffer) Ring() *container.Container[hal.Buffer] { return b.ring }

// Destroy releases every backing instance once none are still referenced
// by an in-flight command buffer.
func (b *Buffer) Destroy() {
	if b.ring == nil || b.device == nil {
		return
	}
	guard := b.device.snatchLock.Read()
	defer guard.Release()
	halDevice := b.device.Raw(guard)
	if halDevice == nil {
		return
	}
	for _, inst := range b.ring.Ring() {
		halDevice.DestroyBuffer(inst.Native)
	}
}
