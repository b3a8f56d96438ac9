package uniform

import (
	"bytes"
	"testing"
)

func newTestBacking() *Backing {
	return &Backing{Data: make([]byte, BufferSize)}
}

func TestAllocator_PushAlignsTo256(t *testing.T) {
	a := &Allocator{Backing: newTestBacking()}

	a.Push(make([]byte, 64))
	if a.WriteOffset%Alignment != 0 {
		t.Fatalf("WriteOffset = %d, want multiple of %d", a.WriteOffset, Alignment)
	}
	if a.WriteOffset-a.DrawOffset < 64 {
		t.Errorf("WriteOffset-DrawOffset = %d, want >= 64", a.WriteOffset-a.DrawOffset)
	}

	a.Push(make([]byte, 300))
	if a.WriteOffset%Alignment != 0 {
		t.Fatalf("WriteOffset = %d, want multiple of %d", a.WriteOffset, Alignment)
	}
}

func TestAllocator_DrawOffsetTracksMostRecentPush(t *testing.T) {
	a := &Allocator{Backing: newTestBacking()}

	first := bytes.Repeat([]byte{0xAA}, 64)
	second := bytes.Repeat([]byte{0xBB}, 64)

	a.Push(first)
	firstDraw := a.DrawOffset

	a.Push(second)
	secondDraw := a.DrawOffset

	if firstDraw == secondDraw {
		t.Fatal("DrawOffset did not advance between pushes")
	}
	if !bytes.Equal(a.Backing.Data[firstDraw:firstDraw+64], first) {
		t.Error("first push's bytes were overwritten at its own offset")
	}
	if !bytes.Equal(a.Backing.Data[secondDraw:secondDraw+64], second) {
		t.Error("second push's bytes are not where DrawOffset points")
	}
}

func TestAllocator_WouldOverflow(t *testing.T) {
	a := &Allocator{Backing: newTestBacking()}
	a.WriteOffset = BufferSize - 128

	if !a.WouldOverflow(64) {
		t.Error("expected overflow when only 128 bytes remain and 256-aligned push needs more")
	}
}

func TestPool_AcquireReleaseReuses(t *testing.T) {
	created := 0
	p := NewPool(func() *Backing {
		created++
		return newTestBacking()
	})

	a := p.Acquire()
	if created != 1 {
		t.Fatalf("created = %d, want 1", created)
	}

	a.Push(make([]byte, 64))
	p.Release(a)

	if p.Len() != 1 {
		t.Fatalf("pool length after release = %d, want 1", p.Len())
	}

	b := p.Acquire()
	if created != 1 {
		t.Errorf("created = %d, want 1 (should have reused)", created)
	}
	if b.WriteOffset != 0 || b.DrawOffset != 0 {
		t.Error("released allocator must have offsets reset to zero")
	}
}

func TestPool_AcquireAllocatesWhenEmpty(t *testing.T) {
	created := 0
	p := NewPool(func() *Backing {
		created++
		return newTestBacking()
	})

	_ = p.Acquire()
	_ = p.Acquire()

	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}
}

func TestFourThousandNinetySevenPushesUseAtLeastTwoAllocators(t *testing.T) {
	// Mirrors spec scenario S4: 4097 * 256 > 1 MiB, so at least two
	// allocators must participate across the sequence.
	created := 0
	p := NewPool(func() *Backing {
		created++
		return newTestBacking()
	})

	a := p.Acquire()
	for i := 0; i < 4097; i++ {
		if a.WouldOverflow(64) {
			p.Release(a)
			a = p.Acquire()
		}
		a.Push(make([]byte, 64))
	}

	if created < 2 {
		t.Fatalf("created = %d allocators, want >= 2 for 4097 pushes of 64 bytes", created)
	}
}
