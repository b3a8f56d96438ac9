// Package container implements the device-neutral resource container: a
// ring of backing GPU instances behind one public handle, plus the cycling
// protocol that lets callers write to a resource referenced by in-flight
// command buffers without an explicit fence wait.
package container

import "sync/atomic"

// Instance is one concrete native GPU object living inside a Container's
// ring, plus the reference count of command buffers currently tracking it.
type Instance[T any] struct {
	Native T

	// refs counts command buffers that have tracked (referenced) this
	// instance and not yet been cleaned up. Only ever touched through
	// Track/Untrack, so it is safe to read without additional locking
	// once a command buffer owns the increment/decrement pairing.
	refs atomic.Int32
}

// RefCount returns the number of command buffers currently tracking this
// instance.
func (i *Instance[T]) RefCount() int32 { return i.refs.Load() }

// Track increments the reference count; called once per command buffer
// that records a use of this instance.
func (i *Instance[T]) Track() { i.refs.Add(1) }

// Untrack decrements the reference count; called during command-buffer
// cleanup for every instance it tracked.
func (i *Instance[T]) Untrack() { i.refs.Add(-1) }

// Ref is the type-erased view of an *Instance[T] a command buffer holds in
// its tracked list: instances of different native types (buffers, textures,
// staging buffers) all land in one list, and cleanup only needs Untrack.
type Ref interface {
	Track()
	Untrack()
	RefCount() int32
}

// Container is the exclusively-device-owned wrapper around a ring of
// backing instances.
type Container[T any] struct {
	Label string

	// Cycleable is true for user-created resources and false for
	// swapchain textures ("canBeCycled semantics" — only the
	// swapchain sets this false; it is never exposed back to callers).
	Cycleable bool

	ring   []*Instance[T]
	active int

	// New allocates a fresh native backing instance. Supplied by the
	// caller (device) since only it knows how to talk to the backend.
	New func() T
}

// New constructs a container with one backing instance already active.
func New[T any](label string, cycleable bool, newInstance func() T) *Container[T] {
	c := &Container[T]{
		Label:     label,
		Cycleable: cycleable,
		New:       newInstance,
	}
	c.ring = append(c.ring, &Instance[T]{Native: newInstance()})
	return c
}

// Active returns the instance the public handle currently aliases.
func (c *Container[T]) Active() *Instance[T] {
	return c.ring[c.active]
}

// ActiveNative is a convenience accessor for Active().Native.
func (c *Container[T]) ActiveNative() T {
	return c.ring[c.active].Native
}

// Ring exposes the full backing-instance list (oldest-first). Used by the
// destroy sweep to check every instance's refcount, not just active's.
func (c *Container[T]) Ring() []*Instance[T] {
	return c.ring
}

// AllRetired reports whether every instance in the ring has refcount 0 —
// the precondition for freeing the container.
func (c *Container[T]) AllRetired() bool {
	for _, inst := range c.ring {
		if inst.RefCount() > 0 {
			return false
		}
	}
	return true
}

// Cycle implements cycling protocol. refTest reports whether
// the active instance is "currently referenced" in the caller's sense —
// buffers gate on refcount>0, the literal source's texture path treats
// this as unconditionally true (see internal/container doc and
// Device.Options.ConservativeTextureCycling upstream).
//
// Cycle is a no-op unless cycle && c.Cycleable && refTest(activeInstance).
// It advances Active() to the first zero-refcount instance in the ring,
// or appends a freshly allocated one.
func (c *Container[T]) Cycle(cycle bool, refTest func(*Instance[T]) bool) {
	if !cycle || !c.Cycleable {
		return
	}
	if !refTest(c.ring[c.active]) {
		return
	}

	for i, inst := range c.ring {
		if inst.RefCount() == 0 {
			c.active = i
			return
		}
	}

	fresh := &Instance[T]{Native: c.New()}
	c.ring = append(c.ring, fresh)
	c.active = len(c.ring) - 1
}

// RefCountGTZero is the buffer-path refTest: cycle iff the active instance
// is referenced by some in-flight command buffer.
func RefCountGTZero[T any](inst *Instance[T]) bool { return inst.RefCount() > 0 }

// Unconditional is the literal-source texture-path refTest: always cycle
// when cycle && canBeCycled, ignoring refcount.
func Unconditional[T any](*Instance[T]) bool { return true }
