package gpu

import "testing"

func TestDebugGroupDepthBalances(t *testing.T) {
	e := &CommandEncoder{device: &Device{}}

	e.PushDebugGroup("frame")
	e.PushDebugGroup("shadow pass")
	if e.debugDepth != 2 {
		t.Errorf("debugDepth after two pushes = %d, want 2", e.debugDepth)
	}
	e.PopDebugGroup()
	e.PopDebugGroup()
	if e.debugDepth != 0 {
		t.Errorf("debugDepth after balanced pops = %d, want 0", e.debugDepth)
	}
}

func TestPopDebugGroupWithoutPushIsDropped(t *testing.T) {
	e := &CommandEncoder{device: &Device{}}
	e.PopDebugGroup()
	if e.debugDepth != 0 {
		t.Errorf("unbalanced pop corrupted debugDepth: %d, want 0", e.debugDepth)
	}
}

func TestDebugOpsOnReleasedEncoderAreNoops(t *testing.T) {
	e := &CommandEncoder{device: &Device{}, released: true}
	e.PushDebugGroup("late")
	e.InsertDebugLabel("late")
	e.PopDebugGroup()
	if e.debugDepth != 0 {
		t.Errorf("released encoder recorded debug state: depth %d, want 0", e.debugDepth)
	}
}
