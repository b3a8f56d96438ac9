package gpu

import (
	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/internal/container"
)

// Texture represents a GPU texture: a device-neutral handle wrapping a ring
// of backing hal.Texture instances, cycled unconditionally (ignoring
// refcount) whenever the caller requests it and the texture is cycleable —
// user-created textures are; a future swapchain-acquired texture would set
// Cycleable false to pin it to its presented instance.
type Texture struct {
	ring     *container.Container[hal.Texture]
	device   *Device
	format   TextureFormat
	released bool
}

// Format returns the texture format.
func (t *Texture) Format() TextureFormat { return t.format }

// Label returns the texture's debug label.
func (t *Texture) Label() string {
	if t.ring == nil {
		return ""
	}
	return t.ring.Label
}

// SetName replaces the texture's debug label.
func (t *Texture) SetName(name string) {
	if t.released || t.ring == nil {
		return
	}
	t.ring.Label = name
}

// Raw returns the hal.Texture the public handle currently aliases.
func (t *Texture) Raw() hal.Texture {
	if t.ring == nil {
		return nil
	}
	return t.ring.ActiveNative()
}

// Cycle advances the texture to a fresh backing instance, unconditionally
// (the texture path ignores refcount, unlike the buffer path).
func (t *Texture) Cycle(cycle bool) {
	if t.ring == nil {
		return
	}
	t.ring.Cycle(cycle, container.Unconditional[hal.Texture])
}

// Ring exposes the backing instance ring for command-buffer tracking.
func (t *Texture) Ring() *container.Container[hal.Texture] { return t.ring }

// activeRef returns the tracked reference for the backing instance the
// handle currently aliases, or nil when the texture has no ring.
func (t *Texture) activeRef() container.Ref {
	if t == nil || t.ring == nil {
		return nil
	}
	return t.ring.Active()
}

// Release schedules the texture for destruction. The backing instances are
// freed by the next deferred-destroy sweep once no in-flight command buffer
// references any of them.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	if t.device == nil {
		t.destroyNow()
		return
	}
	t.device.deferDestroy(t)
	t.device.sweepDisposed()
}

func (t *Texture) allRetired() bool {
	if t.ring == nil {
		return true
	}
	return t.ring.AllRetired()
}

func (t *Texture) destroyNow() {
	if t.device == nil || t.ring == nil {
		return
	}
	halDevice := t.device.halDevice()
	if halDevice == nil {
		return
	}
	for _, inst := range t.ring.Ring() {
		halDevice.DestroyTexture(inst.Native)
	}
}

// TextureView represents a view into a texture.
type TextureView struct {
	hal      hal.TextureView
	device   *Device
	texture  *Texture
	released bool
}

// Release destroys the texture view.
func (v *TextureView) Release() {
	if v.released {
		return
	}
	v.released = true
	halDevice := v.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyTextureView(v.hal)
	}
}
