package core

import (
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBuffer_CreateBuffer(t *testing.T) {
	halDevice := &mockHALDevice{}
	device := NewDevice(halDevice, &Adapter{}, gputypes.Features(0), gputypes.DefaultLimits(), "TestDevice")

	buffer, err := device.CreateBuffer(&gputypes.BufferDescriptor{
		Label: "TestBuffer",
		Size:  1024,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	if !buffer.HasHAL() {
		t.Error("Buffer.HasHAL() should return true")
	}
	if buffer.Usage() != gputypes.BufferUsageVertex|gputypes.BufferUsageCopySrc {
		t.Error("Buffer.Usage() incorrect")
	}
	if buffer.Size() != 1024 {
		t.Error("Buffer.Size() should return 1024")
	}
	if buffer.Label() != "TestBuffer" {
		t.Error("Buffer.Label() should return 'TestBuffer'")
	}
}

func TestBuffer_RawAccess(t *testing.T) {
	halDevice := &mockHALDevice{}
	device := NewDevice(halDevice, &Adapter{}, gputypes.Features(0), gputypes.DefaultLimits(), "TestDevice")

	buffer, err := device.CreateBuffer(&gputypes.BufferDescriptor{Size: 1024, Usage: gputypes.BufferUsageVertex})
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}

	guard := device.SnatchLock().Read()
	defer guard.Release()

	if buffer.Raw(guard) == nil {
		t.Error("Raw() should not return nil")
	}
}

func TestBuffer_Cycle(t *testing.T) {
	halDevice := &mockHALDevice{}
	device := NewDevice(halDevice, &Adapter{}, gputypes.Features(0), gputypes.DefaultLimits(), "TestDevice")

	buffer, err := device.CreateBuffer(&gputypes.BufferDescriptor{Size: 1024, Usage: gputypes.BufferUsageVertex})
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}

	first := buffer.Ring().Active()
	first.Track()

	buffer.Cycle(true)
	if buffer.Ring().Active() == first {
		t.Error("Cycle should advance to a fresh instance while the old one is referenced")
	}

	first.Untrack()
	if !buffer.Ring().AllRetired() {
		// the now-inactive first instance should be retired once untracked,
		// but the new active instance still counts as live ring state.
		for _, inst := range buffer.Ring().Ring() {
			if inst == first && inst.RefCount() != 0 {
				t.Error("first instance should have refcount 0 after Untrack")
			}
		}
	}
}

func TestBuffer_Destroy(t *testing.T) {
	halDevice := &mockHALDevice{}
	device := NewDevice(halDevice, &Adapter{}, gputypes.Features(0), gputypes.DefaultLimits(), "TestDevice")

	buffer, err := device.CreateBuffer(&gputypes.BufferDescriptor{Size: 1024, Usage: gputypes.BufferUsageVertex})
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}

	// Destroy should be safe to call multiple times.
	buffer.Destroy()
	buffer.Destroy()
}

func TestBuffer_NoHAL(t *testing.T) {
	// A zero-value Buffer has no backing ring; every accessor must
	// degrade instead of dereferencing one.
	buffer := &Buffer{}

	if buffer.HasHAL() {
		t.Error("Buffer without HAL should return false")
	}
	if buffer.Raw(nil) != nil {
		t.Error("Raw() should return nil without a backing ring")
	}

	// Destroy should be safe.
	buffer.Destroy()
}

func TestBuffer_ConcurrentAccess(t *testing.T) {
	halDevice := &mockHALDevice{}
	device := NewDevice(halDevice, &Adapter{}, gputypes.Features(0), gputypes.DefaultLimits(), "TestDevice")

	buffer, err := device.CreateBuffer(&gputypes.BufferDescriptor{Size: 1024, Usage: gputypes.BufferUsageVertex})
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guard := device.SnatchLock().Read()
			defer guard.Release()
			_ = buffer.Raw(guard)
		}()
	}
	wg.Wait()
}
