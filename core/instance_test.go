package core

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestMockInstanceExposesOneAdapter(t *testing.T) {
	instance := NewInstanceWithMock(nil)
	defer instance.Destroy()

	if !instance.IsMock() {
		t.Fatal("NewInstanceWithMock must report IsMock")
	}
	if instance.HasHALAdapters() {
		t.Error("a mock instance must not report HAL adapters")
	}
	if instance.HALInstance() != nil {
		t.Error("a mock instance has no HAL instance")
	}

	adapters := instance.EnumerateAdapters()
	if len(adapters) != 1 {
		t.Fatalf("EnumerateAdapters len = %d, want 1", len(adapters))
	}
	if adapters[0].HasHAL() {
		t.Error("the mock adapter must not claim HAL backing")
	}
	if adapters[0].Info.Name == "" {
		t.Error("mock adapter name is empty")
	}
}

func TestRequestAdapterNilOptionsReturnsFirst(t *testing.T) {
	instance := NewInstanceWithMock(nil)
	defer instance.Destroy()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		t.Fatalf("RequestAdapter: %v", err)
	}
	if adapter != instance.EnumerateAdapters()[0] {
		t.Error("nil options must select the first enumerated adapter")
	}
}

func TestRequestAdapterPowerPreference(t *testing.T) {
	instance := NewInstanceWithMock(nil)
	defer instance.Destroy()

	// The mock adapter reports a discrete GPU, so high-performance
	// matches and low-power does not.
	if _, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	}); err != nil {
		t.Errorf("high-performance preference should match the mock adapter: %v", err)
	}
	if _, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceLowPower,
	}); err == nil {
		t.Error("low-power preference must not match a discrete-GPU adapter")
	}
}

func TestRequestAdapterForceFallback(t *testing.T) {
	instance := NewInstanceWithMock(nil)
	defer instance.Destroy()

	if _, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		ForceFallbackAdapter: true,
	}); err == nil {
		t.Error("ForceFallbackAdapter must reject the discrete-GPU mock adapter")
	}
}

func TestInstanceDestroyClearsAdapters(t *testing.T) {
	instance := NewInstanceWithMock(nil)
	instance.Destroy()

	if got := instance.EnumerateAdapters(); len(got) != 0 {
		t.Errorf("EnumerateAdapters after Destroy len = %d, want 0", len(got))
	}
	if _, err := instance.RequestAdapter(nil); err == nil {
		t.Error("RequestAdapter after Destroy must fail")
	}
}

func TestInstanceBackendsAndFlagsRoundTrip(t *testing.T) {
	desc := gputypes.DefaultInstanceDescriptor()
	desc.Backends = gputypes.BackendsVulkan
	desc.Flags = gputypes.InstanceFlagsDebug

	instance := NewInstanceWithMock(&desc)
	defer instance.Destroy()

	if instance.Backends() != gputypes.BackendsVulkan {
		t.Errorf("Backends() = %v, want Vulkan", instance.Backends())
	}
	if instance.Flags() != gputypes.InstanceFlagsDebug {
		t.Errorf("Flags() = %v, want debug", instance.Flags())
	}
}
