// Package fencepool implements a recyclable fence pool: one Fence per
// submitted command buffer, taken from the pool on command
// buffer acquisition and returned on cleanup (if auto-released) or by the
// application (if ownership was transferred via SubmitAndAcquireFence).
package fencepool

import "sync/atomic"

// Fence is a single-bit atomic completion signal.
type Fence struct {
	complete atomic.Bool
}

// Signal marks the fence complete. Called by the backend's submission
// completion callback.
func (f *Fence) Signal() { f.complete.Store(true) }

// Complete reports whether the fence has been signaled (QueryFence).
func (f *Fence) Complete() bool { return f.complete.Load() }

// reset clears the complete flag so the fence can be reused.
func (f *Fence) reset() { f.complete.Store(false) }

// Pool recycles Fences across command-buffer acquisitions.
type Pool struct {
	free []*Fence
}

// NewPool creates an empty fence pool.
func NewPool() *Pool { return &Pool{} }

// Acquire takes a fence from the pool, allocating a new one if empty, and
// resets its complete flag to false.
func (p *Pool) Acquire() *Fence {
	if n := len(p.free); n > 0 {
		f := p.free[n-1]
		p.free = p.free[:n-1]
		f.reset()
		return f
	}
	return &Fence{}
}

// Release returns a fence to the pool for reuse.
func (p *Pool) Release(f *Fence) {
	p.free = append(p.free, f)
}

// Len reports how many fences currently sit idle in the pool (test hook).
func (p *Pool) Len() int { return len(p.free) }
