// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build integration

package core_test

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpu/core"
	"github.com/gogpu/gpu/hal"

	// Import all backends for side-effect registration.
	_ "github.com/gogpu/gpu/hal/allbackends"
)

// TestCoreHALIntegration verifies the instance enumerates adapters from
// registered backends and exposes usable metadata for each.
//
// Run with: go test -tags=integration -v ./core/...
func TestCoreHALIntegration(t *testing.T) {
	backends := hal.AvailableBackends()
	t.Logf("Available HAL backends: %v", backends)
	if len(backends) == 0 {
		t.Skip("No HAL backends available - skipping integration test")
	}

	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})
	if instance == nil {
		t.Fatal("NewInstance returned nil")
	}
	defer instance.Destroy()

	if instance.IsMock() {
		t.Log("Instance is using the mock adapter (no GPU available)")
	}

	adapters := instance.EnumerateAdapters()
	t.Logf("Found %d adapters", len(adapters))
	if len(adapters) == 0 {
		t.Fatal("No adapters found")
	}

	for i, adapter := range adapters {
		t.Logf("Adapter %d: %s (%s, %s)",
			i, adapter.Info.Name, adapter.Info.Vendor, adapter.Info.Backend.String())
		if adapter.Info.Name == "" {
			t.Errorf("Adapter %d has empty name", i)
		}
		t.Logf("  - Has HAL integration: %v", adapter.HasHAL())
	}
}

// TestCoreDeviceCreation opens a device through a real HAL adapter and
// allocates a buffer on it.
func TestCoreDeviceCreation(t *testing.T) {
	if len(hal.AvailableBackends()) == 0 {
		t.Skip("No HAL backends available")
	}

	instance := core.NewInstance(nil)
	defer instance.Destroy()
	if instance.IsMock() {
		t.Skip("Mock adapter only - skipping device creation test")
	}

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		t.Fatalf("RequestAdapter failed: %v", err)
	}
	if !adapter.HasHAL() {
		t.Skip("Adapter has no HAL integration")
	}
	t.Logf("Selected adapter: %s (%s)", adapter.Info.Name, adapter.Info.Backend.String())

	openDev, err := adapter.HALAdapter().Open(0, adapter.Limits)
	if err != nil {
		t.Fatalf("Adapter.Open failed: %v", err)
	}

	device := core.NewDevice(openDev.Device, adapter, 0, adapter.Limits, "integration-device")
	defer device.Destroy()

	buffer, err := device.CreateBuffer(&gputypes.BufferDescriptor{
		Label: "integration-buffer",
		Size:  1024,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	buffer.Destroy()
	t.Log("Buffer created and destroyed successfully")
}
