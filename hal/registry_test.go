package hal_test

import (
	"testing"

	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/types"
)

type mockBackend struct {
	variant types.Backend
}

func (m *mockBackend) Variant() types.Backend { return m.variant }

func (m *mockBackend) CreateDevice(hal.DeviceDescriptor) (hal.Device, error) {
	return nil, hal.ErrBackendNotFound
}

func TestRegisterAndGetBackend(t *testing.T) {
	mock := &mockBackend{variant: types.BackendVulkan}
	hal.RegisterBackend(mock)

	got, ok := hal.GetBackend(types.BackendVulkan)
	if !ok {
		t.Fatal("GetBackend() did not find the registered backend")
	}
	if got.Variant() != types.BackendVulkan {
		t.Errorf("Variant() = %v, want %v", got.Variant(), types.BackendVulkan)
	}
}

func TestGetBackendUnregistered(t *testing.T) {
	_, ok := hal.GetBackend(types.Backend(255))
	if ok {
		t.Error("GetBackend() found a backend that was never registered")
	}
}

func TestRegisterBackendReplaces(t *testing.T) {
	first := &mockBackend{variant: types.BackendMetal}
	second := &mockBackend{variant: types.BackendMetal}
	hal.RegisterBackend(first)
	hal.RegisterBackend(second)

	got, _ := hal.GetBackend(types.BackendMetal)
	if got != hal.Backend(second) {
		t.Error("second RegisterBackend call should replace the first")
	}
}

func TestAvailableBackendsIncludesRegistered(t *testing.T) {
	hal.RegisterBackend(&mockBackend{variant: types.BackendSoftware})
	found := false
	for _, v := range hal.AvailableBackends() {
		if v == types.BackendSoftware {
			found = true
		}
	}
	if !found {
		t.Error("AvailableBackends() did not include a registered backend")
	}
}

func TestCreateBackendUsesFactory(t *testing.T) {
	calls := 0
	hal.RegisterBackendFactory(types.BackendD3D, func() (hal.Backend, error) {
		calls++
		return &mockBackend{variant: types.BackendD3D}, nil
	})

	b, err := hal.CreateBackend(types.BackendD3D)
	if err != nil {
		t.Fatalf("CreateBackend() error = %v", err)
	}
	if b.Variant() != types.BackendD3D {
		t.Errorf("Variant() = %v, want %v", b.Variant(), types.BackendD3D)
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}
