// Package uniform implements the per-command-buffer uniform bump allocator
// and the device-wide pool of backing buffers it draws from.
package uniform

import "fmt"

// BufferSize is the default size of each pooled uniform staging buffer (1 MiB).
const BufferSize = 1 << 20

// Alignment is the push alignment in bytes.
const Alignment = 256

// alignUp rounds n up to the next multiple of Alignment.
func alignUp(n uint32) uint32 {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// Backing is the host-visible buffer an Allocator bump-allocates from. The
// Native field is backend-specific (e.g. a hal.Buffer); uniform itself never
// inspects it.
type Backing struct {
	Native any
	Data   []byte // CPU-visible staging memory mirroring Native, sized BufferSize
}

// Allocator is a per-(stage,slot) bump allocator carved from one Backing.
type Allocator struct {
	Backing     *Backing
	WriteOffset uint32
	DrawOffset  uint32
}

// Push copies data at WriteOffset, advances WriteOffset by its 256-byte
// aligned length, and sets DrawOffset to the offset just written — exactly
// step 3. The caller (Pool.Acquire/CommandBuffer) is
// responsible for replacing the allocator first if Push would overflow;
// Push panics on overflow so misuse during development surfaces loudly
// rather than silently corrupting neighboring pushes.
func (a *Allocator) Push(data []byte) {
	aligned := alignUp(uint32(len(data)))
	if a.WriteOffset+aligned > BufferSize {
		panic(fmt.Sprintf("uniform.Allocator: push of %d bytes overflows at offset %d", len(data), a.WriteOffset))
	}
	copy(a.Backing.Data[a.WriteOffset:], data)
	a.DrawOffset = a.WriteOffset
	a.WriteOffset += aligned
}

// WouldOverflow reports whether pushing n bytes would exceed the backing
// buffer, per step 2.
func (a *Allocator) WouldOverflow(n int) bool {
	return a.WriteOffset+alignUp(uint32(n)) > BufferSize
}

// Reset zeroes the offsets, preparing the allocator to be returned to the
// pool for reuse.
func (a *Allocator) Reset() {
	a.WriteOffset = 0
	a.DrawOffset = 0
}

// Pool is the device-wide pool of Allocators, drawn from by command buffers
// on first push to a (stage, slot) and returned to on command-buffer
// cleanup.
type Pool struct {
	newBacking func() *Backing
	free       []*Allocator
}

// NewPool creates a pool whose backing buffers are produced by newBacking
// (typically a thin wrapper around the device's buffer-creation call).
func NewPool(newBacking func() *Backing) *Pool {
	return &Pool{newBacking: newBacking}
}

// Acquire takes an allocator from the pool, creating one if the pool is
// empty.
func (p *Pool) Acquire() *Allocator {
	if n := len(p.free); n > 0 {
		a := p.free[n-1]
		p.free = p.free[:n-1]
		return a
	}
	return &Allocator{Backing: p.newBacking()}
}

// Release returns an allocator to the pool with its offsets reset to zero.
func (p *Pool) Release(a *Allocator) {
	a.Reset()
	p.free = append(p.free, a)
}

// Len reports how many allocators currently sit idle in the pool (test hook).
func (p *Pool) Len() int { return len(p.free) }
