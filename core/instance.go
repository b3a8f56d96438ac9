package core

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpu/hal"
)

// Instance is the entry point for GPU discovery: it enumerates the
// adapters exposed by every registered backend and hands them out as
// *Adapter values. The instance owns the HAL instances it created and
// destroys them, and every adapter they exposed, when it is destroyed.
//
// Thread-safe for concurrent use.
type Instance struct {
	mu       sync.RWMutex
	backends gputypes.Backends
	flags    gputypes.InstanceFlags

	// adapters holds every adapter enumerated at construction time.
	adapters []*Adapter

	// halInstances tracks the HAL instances created per backend, destroyed
	// with the Instance.
	halInstances []hal.Instance

	// useMock reports that no backend exposed a real adapter and a mock
	// one was substituted so creation-path code stays runnable.
	useMock bool
}

// NewInstance creates an instance and enumerates adapters from the
// registered backends named in desc. If desc is nil, defaults are used.
// When no backend exposes an adapter, a mock adapter (no HAL) is
// substituted so device-creation code paths remain exercisable.
func NewInstance(desc *gputypes.InstanceDescriptor) *Instance {
	if desc == nil {
		defaultDesc := gputypes.DefaultInstanceDescriptor()
		desc = &defaultDesc
	}

	i := &Instance{
		backends: desc.Backends,
		flags:    desc.Flags,
	}

	if !i.enumerateRealAdapters(desc) {
		i.useMock = true
		i.adapters = append(i.adapters, mockAdapter())
	}

	return i
}

// NewInstanceWithMock creates an instance backed only by a mock adapter,
// bypassing backend enumeration entirely. For tests that must not touch
// real drivers.
func NewInstanceWithMock(desc *gputypes.InstanceDescriptor) *Instance {
	if desc == nil {
		defaultDesc := gputypes.DefaultInstanceDescriptor()
		desc = &defaultDesc
	}
	return &Instance{
		backends: desc.Backends,
		flags:    desc.Flags,
		adapters: []*Adapter{mockAdapter()},
		useMock:  true,
	}
}

// enumerateRealAdapters walks the registered backend providers and
// collects every adapter they expose. The software fallback registers in
// the BackendEmpty slot and FilterBackendsByMask orders it last, so a
// native backend that enumerates adapters wins; the fallback only
// contributes adapters when nothing native is available. Returns true if
// at least one adapter was found.
func (i *Instance) enumerateRealAdapters(desc *gputypes.InstanceDescriptor) bool {
	RegisterHALBackends()

	providers := FilterBackendsByMask(desc.Backends)
	if len(providers) == 0 {
		return false
	}

	halDesc := &hal.InstanceDescriptor{
		Backends: desc.Backends,
		Flags:    desc.Flags,
	}

	found := false
	for _, provider := range providers {
		if provider.Variant() == gputypes.BackendEmpty && found {
			continue
		}

		halInstance, err := provider.CreateInstance(halDesc)
		if err != nil {
			continue
		}
		i.halInstances = append(i.halInstances, halInstance)

		for _, exposed := range halInstance.EnumerateAdapters(nil) {
			i.adapters = append(i.adapters, &Adapter{
				Info:            exposed.Info,
				Features:        exposed.Features,
				Limits:          exposed.Capabilities.Limits,
				Backend:         exposed.Info.Backend,
				halAdapter:      exposed.Adapter,
				halCapabilities: &exposed.Capabilities,
			})
			found = true
		}
	}
	return found
}

// mockAdapter builds the HAL-less stand-in adapter used when no backend
// exposes a real one. Its nil halAdapter routes device creation down the
// non-HAL path.
func mockAdapter() *Adapter {
	return &Adapter{
		Info: gputypes.AdapterInfo{
			Name:       "Mock Adapter",
			Vendor:     "MockVendor",
			VendorID:   0x1234,
			DeviceID:   0x5678,
			DeviceType: gputypes.DeviceTypeDiscreteGPU,
			Driver:     "1.0.0",
			DriverInfo: "Mock Driver (no real GPU)",
			Backend:    gputypes.BackendVulkan,
		},
		Features: 0,
		Limits:   gputypes.DefaultLimits(),
		Backend:  gputypes.BackendVulkan,
	}
}

// EnumerateAdapters returns a snapshot of the available adapters.
func (i *Instance) EnumerateAdapters() []*Adapter {
	i.mu.RLock()
	defer i.mu.RUnlock()
	result := make([]*Adapter, len(i.adapters))
	copy(result, i.adapters)
	return result
}

// RequestAdapter returns the first adapter matching options, or an error
// when none does. A nil options selects the first available adapter.
func (i *Instance) RequestAdapter(options *gputypes.RequestAdapterOptions) (*Adapter, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if len(i.adapters) == 0 {
		return nil, fmt.Errorf("no adapters available")
	}
	if options == nil {
		return i.adapters[0], nil
	}

	for _, adapter := range i.adapters {
		if options.PowerPreference != gputypes.PowerPreferenceNone &&
			!matchesPowerPreference(adapter.Info.DeviceType, options.PowerPreference) {
			continue
		}
		if options.ForceFallbackAdapter && adapter.Info.DeviceType != gputypes.DeviceTypeCPU {
			continue
		}
		return adapter, nil
	}

	return nil, fmt.Errorf("no adapter matches the requested options")
}

// matchesPowerPreference reports whether a device type satisfies the
// requested power preference.
func matchesPowerPreference(deviceType gputypes.DeviceType, preference gputypes.PowerPreference) bool {
	switch preference {
	case gputypes.PowerPreferenceLowPower:
		return deviceType == gputypes.DeviceTypeIntegratedGPU
	case gputypes.PowerPreferenceHighPerformance:
		return deviceType == gputypes.DeviceTypeDiscreteGPU
	default:
		return true
	}
}

// Backends returns the enabled backends for this instance.
func (i *Instance) Backends() gputypes.Backends {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.backends
}

// Flags returns the instance flags.
func (i *Instance) Flags() gputypes.InstanceFlags {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.flags
}

// IsMock reports whether the instance fell back to the mock adapter.
func (i *Instance) IsMock() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.useMock
}

// HasHALAdapters reports whether any real HAL adapter was enumerated.
func (i *Instance) HasHALAdapters() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.halInstances) > 0 && !i.useMock
}

// HALInstance returns the HAL instance backing adapter enumeration, or
// nil for a mock-only instance. Surface creation goes through it.
func (i *Instance) HALInstance() hal.Instance {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if len(i.halInstances) == 0 {
		return nil
	}
	return i.halInstances[0]
}

// Destroy releases every adapter and HAL instance this instance owns.
// The instance must not be used afterward.
func (i *Instance) Destroy() {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, adapter := range i.adapters {
		if adapter.halAdapter != nil {
			adapter.halAdapter.Destroy()
		}
	}
	i.adapters = nil

	for _, halInstance := range i.halInstances {
		halInstance.Destroy()
	}
	i.halInstances = nil
}
