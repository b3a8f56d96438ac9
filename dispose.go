package gpu

// disposable is a resource whose Release was deferred until no in-flight
// command buffer references any of its backing instances.
type disposable interface {
	// allRetired reports whether every backing instance's refcount is zero.
	allRetired() bool

	// destroyNow frees every backing instance. Called at most once, only
	// after allRetired returns true.
	destroyNow()
}

// deferDestroy parks r on the device's to-destroy list. The list is swept
// after each submission and drained completely by WaitIdle and Release.
func (d *Device) deferDestroy(r disposable) {
	d.disposeLock.Lock()
	d.toDestroy = append(d.toDestroy, r)
	d.disposeLock.Unlock()
}

// sweepDisposed frees every parked resource whose backing instances have all
// retired, keeping the rest for a later sweep.
func (d *Device) sweepDisposed() {
	d.disposeLock.Lock()
	defer d.disposeLock.Unlock()

	remaining := d.toDestroy[:0]
	for _, r := range d.toDestroy {
		if r.allRetired() {
			r.destroyNow()
		} else {
			remaining = append(remaining, r)
		}
	}
	for i := len(remaining); i < len(d.toDestroy); i++ {
		d.toDestroy[i] = nil
	}
	d.toDestroy = remaining
}
