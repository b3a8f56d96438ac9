package gpu_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpu"

	// Import the software backend so it registers with HAL. Native
	// backends win adapter enumeration when present; on a driver-less
	// host the software rasterizer is enumerated as the fallback adapter,
	// so these tests run the full HAL path everywhere.
	_ "github.com/gogpu/gpu/hal/software"
)

// createTestDevice creates an Instance, Adapter, and Device for integration testing.
// It skips the test if HAL integration is not available (e.g., no real GPU drivers
// installed or running in headless CI). All returned resources should be released
// by the caller.
func createTestDevice(t *testing.T) (*gpu.Instance, *gpu.Adapter, *gpu.Device) {
	t.Helper()

	instance, err := gpu.CreateInstance(nil)
	if err != nil {
		t.Skipf("cannot create instance: %v", err)
	}

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		instance.Release()
		t.Skipf("cannot request adapter: %v", err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		t.Skipf("cannot request device: %v", err)
	}

	// Check that the device has actual HAL integration (not a mock adapter).
	// Mock adapters have no queue and cannot create GPU resources.
	if device.Queue() == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		t.Skip("skipping: device has no HAL integration (mock adapter; no GPU backend available)")
	}

	return instance, adapter, device
}

// --- Instance tests ---

// TestIntegrationCreateInstance tests the full CreateInstance -> Release cycle.
func TestIntegrationCreateInstance(t *testing.T) {
	instance, err := gpu.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	if instance == nil {
		t.Fatal("CreateInstance returned nil")
	}

	// Release should be idempotent.
	instance.Release()
	instance.Release()
}

// --- Adapter tests ---

// TestIntegrationRequestAdapter verifies the adapter has a non-empty name and driver.
func TestIntegrationRequestAdapter(t *testing.T) {
	instance, err := gpu.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		t.Fatalf("RequestAdapter: %v", err)
	}
	if adapter == nil {
		t.Fatal("RequestAdapter returned nil")
	}
	defer adapter.Release()

	info := adapter.Info()
	if info.Name == "" {
		t.Error("adapter info Name is empty")
	}
	if info.Driver == "" {
		t.Error("adapter info Driver is empty")
	}
	t.Logf("adapter: name=%q driver=%q vendor=%q deviceType=%v",
		info.Name, info.Driver, info.Vendor, info.DeviceType)
}

// --- Device tests ---

// TestIntegrationRequestDevice verifies device creation produces a working device
// with queue and non-zero limits.
func TestIntegrationRequestDevice(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	q := device.Queue()
	if q == nil {
		t.Fatal("device.Queue() returned nil")
	}

	limits := device.Limits()
	if limits.MaxBufferSize == 0 {
		t.Error("device limits MaxBufferSize should be non-zero")
	}
	if limits.MaxTextureDimension2D == 0 {
		t.Error("device limits MaxTextureDimension2D should be non-zero")
	}
}

// --- Buffer tests ---

// TestIntegrationCreateBuffer creates a buffer and verifies Size, Usage, and Label.
func TestIntegrationCreateBuffer(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	desc := &gpu.BufferDescriptor{
		Label: "integration-buffer",
		Size:  1024,
		Usage: gpu.BufferUsageStorage | gpu.BufferUsageCopyDst | gpu.BufferUsageCopySrc,
	}

	buf, err := device.CreateBuffer(desc)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer buf.Release()

	if buf.Size() != desc.Size {
		t.Errorf("Size() = %d, want %d", buf.Size(), desc.Size)
	}
	if buf.Usage() != desc.Usage {
		t.Errorf("Usage() = %v, want %v", buf.Usage(), desc.Usage)
	}
	if buf.Label() != desc.Label {
		t.Errorf("Label() = %q, want %q", buf.Label(), desc.Label)
	}
}

// --- Texture tests ---

// TestIntegrationCreateTexture creates a texture and verifies its format.
func TestIntegrationCreateTexture(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	tex, err := device.CreateTexture(&gpu.TextureDescriptor{
		Label:         "integration-texture",
		Size:          gpu.Extent3D{Width: 128, Height: 128, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gpu.TextureFormatRGBA8Unorm,
		Usage:         gpu.TextureUsageTextureBinding | gpu.TextureUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	defer tex.Release()

	if tex.Format() != gpu.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", tex.Format())
	}
}

// TestIntegrationCreateTextureView creates a texture and then a view into it.
func TestIntegrationCreateTextureView(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	tex, err := device.CreateTexture(&gpu.TextureDescriptor{
		Label:         "view-texture",
		Size:          gpu.Extent3D{Width: 64, Height: 64, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gpu.TextureFormatRGBA8Unorm,
		Usage:         gpu.TextureUsageTextureBinding,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	defer tex.Release()

	view, err := device.CreateTextureView(tex, &gpu.TextureViewDescriptor{
		Label:           "integration-view",
		Format:          gpu.TextureFormatRGBA8Unorm,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
	})
	if err != nil {
		t.Fatalf("CreateTextureView: %v", err)
	}
	view.Release()
}

// --- Sampler tests ---

// TestIntegrationCreateSampler creates a sampler with explicit and nil descriptors.
func TestIntegrationCreateSampler(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	sampler, err := device.CreateSampler(&gpu.SamplerDescriptor{
		Label:       "integration-sampler",
		LodMinClamp: 0,
		LodMaxClamp: 32,
		Anisotropy:  1,
	})
	if err != nil {
		t.Fatalf("CreateSampler: %v", err)
	}
	defer sampler.Release()

	// nil descriptor creates a default sampler.
	samplerDefault, err := device.CreateSampler(nil)
	if err != nil {
		t.Fatalf("CreateSampler(nil): %v", err)
	}
	samplerDefault.Release()
}

// --- Shader module tests ---

// TestIntegrationCreateShaderModule creates a shader module with WGSL source.
func TestIntegrationCreateShaderModule(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	mod, err := device.CreateShaderModule(&gpu.ShaderModuleDescriptor{
		Label: "integration-shader",
		WGSL: `
@group(0) @binding(0)
var<storage, read_write> data: array<u32>;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] * 2u;
}
`,
	})
	if err != nil {
		t.Fatalf("CreateShaderModule: %v", err)
	}
	mod.Release()
}

// --- Bind group layout tests ---

// TestIntegrationCreateBindGroupLayout creates a bind group layout with a storage
// buffer entry.
func TestIntegrationCreateBindGroupLayout(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	layout, err := device.CreateBindGroupLayout(&gpu.BindGroupLayoutDescriptor{
		Label: "integration-bgl",
		Entries: []gpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gpu.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateBindGroupLayout: %v", err)
	}
	layout.Release()
}

// --- Pipeline layout tests ---

// TestIntegrationCreatePipelineLayout creates a pipeline layout with one bind group
// layout containing a storage buffer entry.
func TestIntegrationCreatePipelineLayout(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	bgl, err := device.CreateBindGroupLayout(&gpu.BindGroupLayoutDescriptor{
		Label: "pipeline-bgl",
		Entries: []gpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gpu.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateBindGroupLayout: %v", err)
	}
	defer bgl.Release()

	pipelineLayout, err := device.CreatePipelineLayout(&gpu.PipelineLayoutDescriptor{
		Label:            "integration-pipeline-layout",
		BindGroupLayouts: []*gpu.BindGroupLayout{bgl},
	})
	if err != nil {
		t.Fatalf("CreatePipelineLayout: %v", err)
	}
	pipelineLayout.Release()
}

// --- Command encoder tests ---

// TestIntegrationCreateCommandEncoder creates a command encoder, records nothing,
// and finishes it to produce a CommandBuffer.
func TestIntegrationCreateCommandEncoder(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	encoder, err := device.CreateCommandEncoder(&gpu.CommandEncoderDescriptor{
		Label: "integration-encoder",
	})
	if err != nil {
		t.Fatalf("CreateCommandEncoder: %v", err)
	}

	cmdBuf, err := encoder.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if cmdBuf == nil {
		t.Fatal("Finish returned nil CommandBuffer")
	}
}

// --- Queue tests ---

// TestIntegrationQueueWriteBuffer writes data to a buffer using Queue.WriteBuffer.
func TestIntegrationQueueWriteBuffer(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	buf, err := device.CreateBuffer(&gpu.BufferDescriptor{
		Label: "write-test-buf",
		Size:  256,
		Usage: gpu.BufferUsageStorage | gpu.BufferUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer buf.Release()

	q := device.Queue()
	if q == nil {
		t.Fatal("Queue is nil")
	}

	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i + 1)
	}

	// WriteBuffer should not panic and should store the data.
	q.WriteBuffer(buf, 0, data)
}

// --- WaitIdle tests ---

// TestIntegrationDeviceWaitIdle verifies WaitIdle returns without error on a
// fresh device with no pending work.
func TestIntegrationDeviceWaitIdle(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	err := device.WaitIdle()
	if err != nil {
		t.Fatalf("WaitIdle: %v", err)
	}
}

// --- Full compute workflow ---

// TestIntegrationFullComputeWorkflow exercises the full compute pipeline creation
// workflow: shader -> bind group layout -> pipeline layout -> compute pipeline ->
// bind group -> encoder -> compute pass -> dispatch -> finish -> submit.
//
// The software backend does NOT support compute pipelines and returns an error.
// In that case, the test still exercises everything else and submits an empty
// command buffer.
func TestIntegrationFullComputeWorkflow(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	// 1. Create shader module.
	shader, err := device.CreateShaderModule(&gpu.ShaderModuleDescriptor{
		Label: "compute-workflow-shader",
		WGSL: `
@group(0) @binding(0)
var<storage, read_write> data: array<u32>;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] * 2u;
}
`,
	})
	if err != nil {
		t.Fatalf("CreateShaderModule: %v", err)
	}
	defer shader.Release()

	// 2. Create bind group layout.
	bgl, err := device.CreateBindGroupLayout(&gpu.BindGroupLayoutDescriptor{
		Label: "compute-bgl",
		Entries: []gpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gpu.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateBindGroupLayout: %v", err)
	}
	defer bgl.Release()

	// 3. Create pipeline layout.
	pipelineLayout, err := device.CreatePipelineLayout(&gpu.PipelineLayoutDescriptor{
		Label:            "compute-pipeline-layout",
		BindGroupLayouts: []*gpu.BindGroupLayout{bgl},
	})
	if err != nil {
		t.Fatalf("CreatePipelineLayout: %v", err)
	}
	defer pipelineLayout.Release()

	// 4. Attempt to create compute pipeline.
	//    The software backend returns ErrComputeNotSupported.
	computePipeline, cpErr := device.CreateComputePipeline(&gpu.ComputePipelineDescriptor{
		Label:      "compute-pipeline",
		Layout:     pipelineLayout,
		Module:     shader,
		EntryPoint: "main",
	})
	if cpErr != nil {
		t.Logf("CreateComputePipeline returned expected error: %v", cpErr)
	} else {
		defer computePipeline.Release()
	}

	// 5. Create a storage buffer.
	buf, err := device.CreateBuffer(&gpu.BufferDescriptor{
		Label: "compute-data-buf",
		Size:  256,
		Usage: gpu.BufferUsageStorage | gpu.BufferUsageCopyDst | gpu.BufferUsageCopySrc,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer buf.Release()

	// 6. Create bind group.
	bg, err := device.CreateBindGroup(&gpu.BindGroupDescriptor{
		Label:  "compute-bind-group",
		Layout: bgl,
		Entries: []gpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf,
				Offset:  0,
				Size:    256,
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateBindGroup: %v", err)
	}
	defer bg.Release()

	// 7. Create command encoder, begin compute pass, dispatch, end, finish, submit.
	encoder, err := device.CreateCommandEncoder(&gpu.CommandEncoderDescriptor{
		Label: "compute-encoder",
	})
	if err != nil {
		t.Fatalf("CreateCommandEncoder: %v", err)
	}

	pass, err := encoder.BeginComputePass(&gpu.ComputePassDescriptor{
		Label: "compute-pass",
	})
	if err != nil {
		t.Fatalf("BeginComputePass: %v", err)
	}

	// SetPipeline and SetBindGroup are recorded even if the compute pipeline
	// creation failed (they are no-ops in that case).
	if computePipeline != nil {
		pass.SetPipeline(computePipeline)
		pass.SetBindGroup(0, bg, nil)
	}
	pass.Dispatch(1, 1, 1)

	err = pass.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}

	cmdBuf, err := encoder.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	err = device.Queue().Submit(cmdBuf)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

// --- Read buffer tests ---

// TestIntegrationQueueReadBuffer writes data to a buffer via Queue.WriteBuffer,
// reads it back via Queue.ReadBuffer, and verifies the contents match.
func TestIntegrationQueueReadBuffer(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	const bufSize = 64

	buf, err := device.CreateBuffer(&gpu.BufferDescriptor{
		Label: "readback-buf",
		Size:  bufSize,
		Usage: gpu.BufferUsageStorage | gpu.BufferUsageCopyDst | gpu.BufferUsageCopySrc,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer buf.Release()

	q := device.Queue()
	if q == nil {
		t.Fatal("Queue is nil")
	}

	// Write 16 uint32 values (4 bytes each = 64 bytes total).
	writeData := make([]byte, bufSize)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(writeData[i*4:], uint32(i*10+1))
	}

	q.WriteBuffer(buf, 0, writeData)

	// Read it back.
	readData := make([]byte, bufSize)
	err = q.ReadBuffer(buf, 0, readData)
	if err != nil {
		t.Fatalf("ReadBuffer: %v", err)
	}

	// Verify contents match.
	for i := 0; i < 16; i++ {
		got := binary.LittleEndian.Uint32(readData[i*4:])
		want := uint32(i*10 + 1)
		if got != want {
			t.Errorf("readData[%d] = %d, want %d", i, got, want)
		}
	}
}

// --- Reference tracking / cycling lifecycle ---

// TestIntegrationRefcountsRetireAfterSubmit records a copy pass touching a
// texture and a transfer buffer, submits, and verifies every backing
// instance's refcount has returned to zero once the queue wait completes.
func TestIntegrationRefcountsRetireAfterSubmit(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	tex, err := device.CreateTexture(&gpu.TextureDescriptor{
		Label:         "refcount-texture",
		Size:          gpu.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gpu.TextureFormatRGBA8Unorm,
		Usage:         gpu.TextureUsageTextureBinding | gpu.TextureUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	defer tex.Release()

	tb, err := device.CreateTransferBuffer(&gpu.TransferBufferDescriptor{
		Label:     "refcount-staging",
		Direction: gpu.TransferBufferUpload,
		Size:      64,
	})
	if err != nil {
		t.Fatalf("CreateTransferBuffer: %v", err)
	}
	defer tb.Release()

	data, err := device.MapTransferBuffer(tb, false)
	if err != nil {
		t.Fatalf("MapTransferBuffer: %v", err)
	}
	for i := range data {
		data[i] = byte(i)
	}
	device.UnmapTransferBuffer(tb)

	enc, err := device.CreateCommandEncoder(nil)
	if err != nil {
		t.Fatalf("CreateCommandEncoder: %v", err)
	}

	pass, err := enc.BeginCopyPass()
	if err != nil {
		t.Fatalf("BeginCopyPass: %v", err)
	}
	pass.UploadToTexture(tb, 0, tex, gpu.TextureTransferRegion{
		Size:        [3]uint32{4, 4, 1},
		BytesPerRow: 16,
	})
	pass.End()

	cb, err := enc.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if tex.Ring().AllRetired() {
		t.Error("texture touched by a recorded copy should be referenced before submit")
	}

	if err := device.Queue().Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := device.WaitIdle(); err != nil {
		t.Fatalf("WaitIdle: %v", err)
	}

	if !tex.Ring().AllRetired() {
		t.Error("after Submit+WaitIdle every texture backing instance must have refcount 0")
	}
}

// TestIntegrationTransferBufferCyclePreservesInFlightBytes loops map-with-
// cycle / write / upload / submit and checks each iteration lands its own
// bytes in the destination buffer.
func TestIntegrationTransferBufferCyclePreservesInFlightBytes(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	dst, err := device.CreateBuffer(&gpu.BufferDescriptor{
		Label: "cycle-dst",
		Size:  64,
		Usage: gpu.BufferUsageVertex | gpu.BufferUsageCopyDst | gpu.BufferUsageCopySrc,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer dst.Release()

	tb, err := device.CreateTransferBuffer(&gpu.TransferBufferDescriptor{
		Label:     "cycle-staging",
		Direction: gpu.TransferBufferUpload,
		Size:      64,
	})
	if err != nil {
		t.Fatalf("CreateTransferBuffer: %v", err)
	}
	defer tb.Release()

	for i := 0; i < 4; i++ {
		magic := byte(0xA0 + i)
		data, err := device.MapTransferBuffer(tb, true)
		if err != nil {
			t.Fatalf("iteration %d: MapTransferBuffer: %v", i, err)
		}
		for j := range data {
			data[j] = magic
		}
		device.UnmapTransferBuffer(tb)

		enc, err := device.CreateCommandEncoder(nil)
		if err != nil {
			t.Fatalf("iteration %d: CreateCommandEncoder: %v", i, err)
		}
		pass, err := enc.BeginCopyPass()
		if err != nil {
			t.Fatalf("iteration %d: BeginCopyPass: %v", i, err)
		}
		pass.UploadToBuffer(tb, gpu.BufferTransferRegion{Size: 64}, dst, 0)
		pass.End()
		cb, err := enc.Finish()
		if err != nil {
			t.Fatalf("iteration %d: Finish: %v", i, err)
		}
		if err := device.Queue().Submit(cb); err != nil {
			t.Fatalf("iteration %d: Submit: %v", i, err)
		}

		got := make([]byte, 64)
		if err := device.Queue().ReadBuffer(dst, 0, got); err != nil {
			t.Skipf("backend cannot read back buffers: %v", err)
		}
		for j, b := range got {
			if b != magic {
				t.Fatalf("iteration %d: byte %d = %#x, want %#x", i, j, b, magic)
			}
		}
	}

	if err := device.WaitIdle(); err != nil {
		t.Fatalf("WaitIdle: %v", err)
	}
}

// --- Multi-draw indirect ---

// TestIntegrationMultiDrawIndirectRecords encodes a two-command multi-draw
// from packed indirect argument blocks and verifies recording and submission
// complete without error.
func TestIntegrationMultiDrawIndirectRecords(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	args := make([]byte, 2*gpu.IndirectDrawArgsSize)
	binary.LittleEndian.PutUint32(args[0:], 3)  // vertexCount
	binary.LittleEndian.PutUint32(args[4:], 1)  // instanceCount
	binary.LittleEndian.PutUint32(args[16:], 3) // second block
	binary.LittleEndian.PutUint32(args[20:], 1)

	indirect, err := device.CreateBuffer(&gpu.BufferDescriptor{
		Label: "indirect-args",
		Size:  uint64(len(args)),
		Usage: gpu.BufferUsageIndirect | gpu.BufferUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer indirect.Release()
	device.Queue().WriteBuffer(indirect, 0, args)

	tex, err := device.CreateTexture(&gpu.TextureDescriptor{
		Label:         "multidraw-target",
		Size:          gpu.Extent3D{Width: 16, Height: 16, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gpu.TextureFormatRGBA8Unorm,
		Usage:         gpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	defer tex.Release()

	view, err := device.CreateTextureView(tex, &gpu.TextureViewDescriptor{
		Format:          gpu.TextureFormatRGBA8Unorm,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		t.Fatalf("CreateTextureView: %v", err)
	}
	defer view.Release()

	enc, err := device.CreateCommandEncoder(nil)
	if err != nil {
		t.Fatalf("CreateCommandEncoder: %v", err)
	}
	pass, err := enc.BeginRenderPass(&gpu.RenderPassDescriptor{
		Label: "multidraw-pass",
		ColorAttachments: []gpu.RenderPassColorAttachment{
			{View: view, LoadOp: gputypes.LoadOpClear, StoreOp: gputypes.StoreOpStore},
		},
	})
	if err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}
	pass.PushDebugGroup("multidraw")
	pass.MultiDrawIndirect(indirect, 0, 2, gpu.IndirectDrawArgsSize)
	pass.PopDebugGroup()
	if err := pass.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	cb, err := enc.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := device.Queue().Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

// --- Software-rasterized end-to-end draw ---

// TestIntegrationTriangleRendersSolidColor drives the full graphics path
// on the CPU reference backend: callback shader module, uniform buffer,
// vertex buffer, render pass with clear, one fullscreen triangle, then a
// copy-pass download verifying the center pixel.
func TestIntegrationTriangleRendersSolidColor(t *testing.T) {
	instance, adapter, device := createTestDevice(t)
	defer instance.Release()
	defer adapter.Release()
	defer device.Release()

	if adapter.Info().Driver != "software" {
		t.Skip("callback shader programs only execute on the software reference backend")
	}

	module, err := device.CreateShaderModule(&gpu.ShaderModuleDescriptor{
		Label: "solid-color",
		WGSL:  "solid_color",
	})
	if err != nil {
		t.Fatalf("CreateShaderModule: %v", err)
	}
	defer module.Release()

	// Identity MVP followed by opaque red.
	uniformBytes := make([]byte, 80)
	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	for i, f := range identity {
		binary.LittleEndian.PutUint32(uniformBytes[i*4:], math.Float32bits(f))
	}
	binary.LittleEndian.PutUint32(uniformBytes[64:], math.Float32bits(1)) // r
	binary.LittleEndian.PutUint32(uniformBytes[76:], math.Float32bits(1)) // a

	uniformBuf, err := device.CreateBuffer(&gpu.BufferDescriptor{
		Label: "triangle-uniforms",
		Size:  uint64(len(uniformBytes)),
		Usage: gpu.BufferUsageUniform | gpu.BufferUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("CreateBuffer(uniform): %v", err)
	}
	defer uniformBuf.Release()
	device.Queue().WriteBuffer(uniformBuf, 0, uniformBytes)

	// One triangle covering the whole viewport in NDC.
	positions := []float32{-1, -1, 0, 3, -1, 0, -1, 3, 0}
	vertexBytes := make([]byte, len(positions)*4)
	for i, f := range positions {
		binary.LittleEndian.PutUint32(vertexBytes[i*4:], math.Float32bits(f))
	}
	vertexBuf, err := device.CreateBuffer(&gpu.BufferDescriptor{
		Label: "triangle-vertices",
		Size:  uint64(len(vertexBytes)),
		Usage: gpu.BufferUsageVertex | gpu.BufferUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("CreateBuffer(vertex): %v", err)
	}
	defer vertexBuf.Release()
	device.Queue().WriteBuffer(vertexBuf, 0, vertexBytes)

	bgl, err := device.CreateBindGroupLayout(&gpu.BindGroupLayoutDescriptor{
		Label: "triangle-bgl",
		Entries: []gpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gpu.ShaderStageVertex | gpu.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateBindGroupLayout: %v", err)
	}
	defer bgl.Release()

	bindGroup, err := device.CreateBindGroup(&gpu.BindGroupDescriptor{
		Label:   "triangle-bind-group",
		Layout:  bgl,
		Entries: []gpu.BindGroupEntry{{Binding: 0, Buffer: uniformBuf}},
	})
	if err != nil {
		t.Fatalf("CreateBindGroup: %v", err)
	}
	defer bindGroup.Release()

	pipeline, err := device.CreateRenderPipeline(&gpu.RenderPipelineDescriptor{
		Label: "triangle-pipeline",
		Vertex: gpu.VertexState{
			Module:     module,
			EntryPoint: "main",
			Buffers: []gpu.VertexBufferLayout{
				{
					ArrayStride: 12,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
					},
				},
			},
		},
		Primitive: gpu.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeNone,
		},
		Multisample: gpu.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
		Fragment: &gpu.FragmentState{
			Module:     module,
			EntryPoint: "main",
			Targets: []gpu.ColorTargetState{
				{Format: gpu.TextureFormatRGBA8Unorm, WriteMask: gputypes.ColorWriteMaskAll},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateRenderPipeline: %v", err)
	}
	defer pipeline.Release()

	target, err := device.CreateTexture(&gpu.TextureDescriptor{
		Label:         "triangle-target",
		Size:          gpu.Extent3D{Width: 16, Height: 16, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gpu.TextureFormatRGBA8Unorm,
		Usage:         gpu.TextureUsageRenderAttachment | gpu.TextureUsageCopySrc,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	defer target.Release()

	view, err := device.CreateTextureView(target, &gpu.TextureViewDescriptor{
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		t.Fatalf("CreateTextureView: %v", err)
	}
	defer view.Release()

	enc, err := device.CreateCommandEncoder(nil)
	if err != nil {
		t.Fatalf("CreateCommandEncoder: %v", err)
	}
	pass, err := enc.BeginRenderPass(&gpu.RenderPassDescriptor{
		Label: "triangle-pass",
		ColorAttachments: []gpu.RenderPassColorAttachment{
			{View: view, LoadOp: gputypes.LoadOpClear, StoreOp: gputypes.StoreOpStore},
		},
	})
	if err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, vertexBuf, 0)
	pass.Draw(3, 1, 0, 0)
	if err := pass.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	download, err := device.CreateTransferBuffer(&gpu.TransferBufferDescriptor{
		Label:     "triangle-readback",
		Direction: gpu.TransferBufferDownload,
		Size:      16 * 16 * 4,
	})
	if err != nil {
		t.Fatalf("CreateTransferBuffer: %v", err)
	}
	defer download.Release()

	copyPass, err := enc.BeginCopyPass()
	if err != nil {
		t.Fatalf("BeginCopyPass: %v", err)
	}
	copyPass.DownloadFromTexture(target, gpu.TextureTransferRegion{
		Size:        [3]uint32{16, 16, 1},
		BytesPerRow: 16 * 4,
	}, download, 0)
	copyPass.End()

	cb, err := enc.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := device.Queue().Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	pixels := make([]byte, 16*16*4)
	if err := device.GetTransferData(download, pixels, 0); err != nil {
		t.Fatalf("GetTransferData: %v", err)
	}
	center := (8*16 + 8) * 4
	if pixels[center] != 255 || pixels[center+1] != 0 || pixels[center+2] != 0 || pixels[center+3] != 255 {
		t.Errorf("center pixel = [%d %d %d %d], want [255 0 0 255]",
			pixels[center], pixels[center+1], pixels[center+2], pixels[center+3])
	}
}
