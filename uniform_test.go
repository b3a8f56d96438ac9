package gpu

import (
	"testing"

	"github.com/gogpu/gpu/internal/uniform"
)

func TestPushUniformAcquiresAndMarksDirty(t *testing.T) {
	d := &Device{}
	e := &CommandEncoder{device: d}

	if err := e.PushVertexUniformData(0, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("PushVertexUniformData: %v", err)
	}

	key := uniformKey{stage: uniformStageVertex, slot: 0}
	if !e.uniformDirty[key] {
		t.Error("pushing uniform data should mark its slot dirty")
	}
	if _, ok := e.uniformAllocators[key]; !ok {
		t.Fatal("pushing uniform data should acquire an allocator for its slot")
	}
	if len(e.trackedUniformAllocators) != 1 {
		t.Errorf("trackedUniformAllocators len = %d, want 1", len(e.trackedUniformAllocators))
	}
}

func TestPushUniformRejectsOutOfRangeSlot(t *testing.T) {
	d := &Device{}
	e := &CommandEncoder{device: d}

	if err := e.PushFragmentUniformData(uniformSlotCount, []byte{1}); err == nil {
		t.Fatal("expected an error for an out-of-range uniform slot")
	}
}

func TestFlushUniformStageClearsOnlyDirtyFlags(t *testing.T) {
	d := &Device{}
	e := &CommandEncoder{device: d}

	_ = e.PushVertexUniformData(0, []byte{1, 2, 3, 4})
	_ = e.PushFragmentUniformData(1, []byte{5, 6, 7, 8})

	e.flushUniformStage(uniformStageVertex)

	if e.uniformDirty[uniformKey{stage: uniformStageVertex, slot: 0}] {
		t.Error("flushUniformStage(vertex) should have cleared the vertex dirty flag")
	}
	if !e.uniformDirty[uniformKey{stage: uniformStageFragment, slot: 1}] {
		t.Error("flushUniformStage(vertex) must not touch fragment-stage dirty flags")
	}
}

func TestPushUniformOverflowReplacesAllocator(t *testing.T) {
	d := &Device{}
	e := &CommandEncoder{device: d}

	key := uniformKey{stage: uniformStageCompute, slot: 0}
	_ = e.PushComputeUniformData(0, make([]byte, 4))
	first := e.uniformAllocators[key]

	// Force an overflow on the next push by exhausting the allocator directly.
	first.WriteOffset = uniform.BufferSize - 64
	_ = e.PushComputeUniformData(0, make([]byte, 256))

	second := e.uniformAllocators[key]
	if second == first {
		t.Error("a push that would overflow must acquire a fresh allocator")
	}
	if len(e.trackedUniformAllocators) != 2 {
		t.Errorf("trackedUniformAllocators len = %d, want 2 (old + replacement both tracked)", len(e.trackedUniformAllocators))
	}
}

func TestReleaseUniformAllocatorsReturnsToPool(t *testing.T) {
	d := &Device{}
	e := &CommandEncoder{device: d}
	_ = e.PushVertexUniformData(0, []byte{1, 2, 3, 4})

	pool := d.uniformPool()
	before := pool.Len()

	cb := &CommandBuffer{device: d, trackedUniformAllocators: e.trackedUniformAllocators}
	cb.releaseUniformAllocators()

	if pool.Len() != before+1 {
		t.Errorf("pool.Len() = %d, want %d after release", pool.Len(), before+1)
	}
	if cb.trackedUniformAllocators != nil {
		t.Error("releaseUniformAllocators should clear the tracked list")
	}
}
