package gpu

import "testing"

type fakeDisposable struct {
	retired   bool
	destroyed int
}

func (f *fakeDisposable) allRetired() bool { return f.retired }
func (f *fakeDisposable) destroyNow()      { f.destroyed++ }

func TestSweepDisposedFreesOnlyRetiredResources(t *testing.T) {
	d := &Device{}
	busy := &fakeDisposable{}
	idle := &fakeDisposable{retired: true}
	d.deferDestroy(busy)
	d.deferDestroy(idle)

	d.sweepDisposed()

	if idle.destroyed != 1 {
		t.Errorf("retired resource destroyed %d times, want 1", idle.destroyed)
	}
	if busy.destroyed != 0 {
		t.Error("resource with live references must survive the sweep")
	}
	if len(d.toDestroy) != 1 {
		t.Fatalf("to-destroy list len after sweep = %d, want 1", len(d.toDestroy))
	}

	busy.retired = true
	d.sweepDisposed()
	if busy.destroyed != 1 {
		t.Errorf("resource destroyed %d times after retiring, want 1", busy.destroyed)
	}
	if len(d.toDestroy) != 0 {
		t.Errorf("to-destroy list len after full drain = %d, want 0", len(d.toDestroy))
	}
}

func TestReleaseDefersWhileCommandBufferReferencesInstance(t *testing.T) {
	d := &Device{}
	e := &CommandEncoder{device: d}
	tex := newTestTexture(d)

	e.track(tex.activeRef())
	tex.Release()

	d.disposeLock.Lock()
	pending := len(d.toDestroy)
	d.disposeLock.Unlock()
	if pending != 1 {
		t.Fatalf("released texture with a live reference: to-destroy len = %d, want 1", pending)
	}

	(&CommandBuffer{tracked: e.tracked}).untrackAll()
	d.sweepDisposed()

	d.disposeLock.Lock()
	pending = len(d.toDestroy)
	d.disposeLock.Unlock()
	if pending != 0 {
		t.Errorf("after retirement and sweep: to-destroy len = %d, want 0", pending)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	d := &Device{}
	tex := newTestTexture(d)
	tex.Release()
	tex.Release()

	d.disposeLock.Lock()
	defer d.disposeLock.Unlock()
	if len(d.toDestroy) > 1 {
		t.Errorf("double Release enqueued %d entries, want at most 1", len(d.toDestroy))
	}
}
