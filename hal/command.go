package hal

import "github.com/gogpu/gputypes"

// CommandEncoder records GPU commands into a command buffer.
// Encoders are single-use: call EndEncoding or DiscardEncoding exactly once.
type CommandEncoder interface {
	// BeginEncoding starts recording commands.
	// label is an optional debug label applied to the resulting command buffer.
	BeginEncoding(label string) error

	// EndEncoding finishes recording and returns the command buffer.
	// The encoder must not be used again until ResetAll is called.
	EndEncoding() (CommandBuffer, error)

	// DiscardEncoding abandons the in-progress recording without producing
	// a command buffer.
	DiscardEncoding()

	// ResetAll recycles a batch of previously submitted command buffers so
	// the encoder can reuse their underlying storage.
	ResetAll(commandBuffers []CommandBuffer)

	// TransitionBuffers inserts barriers transitioning buffers between usages.
	TransitionBuffers(barriers []BufferBarrier)

	// TransitionTextures inserts barriers transitioning textures between usages.
	TransitionTextures(barriers []TextureBarrier)

	// ClearBuffer fills a buffer range with zeros.
	ClearBuffer(buffer Buffer, offset, size uint64)

	// CopyBufferToBuffer copies data between buffers.
	CopyBufferToBuffer(src, dst Buffer, regions []BufferCopy)

	// CopyBufferToTexture copies buffer data into a texture.
	CopyBufferToTexture(src Buffer, dst Texture, regions []BufferTextureCopy)

	// CopyTextureToBuffer copies texture data into a buffer.
	CopyTextureToBuffer(src Texture, dst Buffer, regions []BufferTextureCopy)

	// CopyTextureToTexture copies data between textures.
	CopyTextureToTexture(src, dst Texture, regions []TextureCopy)

	// BeginRenderPass starts a render pass, returning an encoder scoped to it.
	BeginRenderPass(desc *RenderPassDescriptor) RenderPassEncoder

	// BeginComputePass starts a compute pass, returning an encoder scoped to it.
	BeginComputePass(desc *ComputePassDescriptor) ComputePassEncoder
}

// RenderPassEncoder records commands within a single render pass.
type RenderPassEncoder interface {
	// End finishes the render pass.
	End()

	// SetPipeline binds the render pipeline used for subsequent draws.
	SetPipeline(pipeline RenderPipeline)

	// SetBindGroup binds a bind group at the given index with dynamic offsets.
	SetBindGroup(index uint32, group BindGroup, offsets []uint32)

	// SetVertexBuffer binds a vertex buffer to the given slot.
	SetVertexBuffer(slot uint32, buffer Buffer, offset uint64)

	// SetIndexBuffer binds the index buffer used by indexed draws.
	SetIndexBuffer(buffer Buffer, format gputypes.IndexFormat, offset uint64)

	// SetViewport sets the viewport transform.
	SetViewport(x, y, width, height, minDepth, maxDepth float32)

	// SetScissorRect sets the scissor rectangle.
	SetScissorRect(x, y, width, height uint32)

	// SetBlendConstant sets the constant blend color.
	SetBlendConstant(color *gputypes.Color)

	// SetStencilReference sets the stencil reference value.
	SetStencilReference(reference uint32)

	// Draw issues a non-indexed draw call.
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)

	// DrawIndexed issues an indexed draw call.
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)

	// DrawIndirect issues a non-indexed draw call with parameters read from a buffer.
	DrawIndirect(buffer Buffer, offset uint64)

	// DrawIndexedIndirect issues an indexed draw call with parameters read from a buffer.
	DrawIndexedIndirect(buffer Buffer, offset uint64)

	// ExecuteBundle replays a pre-recorded render bundle.
	ExecuteBundle(bundle RenderBundle)
}

// ComputePassEncoder records commands within a single compute pass.
type ComputePassEncoder interface {
	// End finishes the compute pass.
	End()

	// SetPipeline binds the compute pipeline used for subsequent dispatches.
	SetPipeline(pipeline ComputePipeline)

	// SetBindGroup binds a bind group at the given index with dynamic offsets.
	SetBindGroup(index uint32, group BindGroup, offsets []uint32)

	// Dispatch issues a compute dispatch with the given workgroup counts.
	Dispatch(x, y, z uint32)

	// DispatchIndirect issues a compute dispatch with workgroup counts read from a buffer.
	DispatchIndirect(buffer Buffer, offset uint64)
}

// RenderBundle is a pre-recorded sequence of render commands that can be
// replayed within multiple render passes.
type RenderBundle interface {
	Resource
}

// RenderBundleEncoder records a fixed sequence of render commands once so
// it can be replayed cheaply across many render passes (e.g. once per
// frame) without re-validating or re-encoding each draw.
type RenderBundleEncoder interface {
	// SetPipeline binds the render pipeline used for subsequent draws.
	SetPipeline(pipeline RenderPipeline)

	// SetBindGroup binds a bind group at the given index with dynamic offsets.
	SetBindGroup(index uint32, group BindGroup, offsets []uint32)

	// SetVertexBuffer binds a vertex buffer to the given slot.
	SetVertexBuffer(slot uint32, buffer Buffer, offset uint64)

	// SetIndexBuffer binds the index buffer used by indexed draws.
	SetIndexBuffer(buffer Buffer, format gputypes.IndexFormat, offset uint64)

	// Draw issues a non-indexed draw call.
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)

	// DrawIndexed issues an indexed draw call.
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)

	// Finish completes recording and returns the replayable bundle.
	Finish() RenderBundle
}

// BufferBarrier describes a usage transition for a buffer.
type BufferBarrier struct {
	// Buffer is the buffer being transitioned.
	Buffer Buffer

	// Usage describes the old and new usage states.
	Usage BufferUsageTransition
}

// TextureBarrier describes a usage transition for a texture range.
type TextureBarrier struct {
	// Texture is the texture being transitioned.
	Texture Texture

	// Range is the subresource range affected by the transition.
	Range TextureRange

	// Usage describes the old and new usage states.
	Usage TextureUsageTransition
}

// BufferUsageTransition describes a buffer usage state change.
type BufferUsageTransition struct {
	OldUsage gputypes.BufferUsage
	NewUsage gputypes.BufferUsage
}

// TextureUsageTransition describes a texture usage state change.
type TextureUsageTransition struct {
	OldUsage gputypes.TextureUsage
	NewUsage gputypes.TextureUsage
}

// TextureRange identifies a subresource range within a texture.
type TextureRange struct {
	// Aspect selects which aspect(s) of the texture are affected.
	Aspect gputypes.TextureAspect

	// BaseMipLevel is the first affected mip level.
	BaseMipLevel uint32

	// MipLevelCount is the number of affected mip levels.
	MipLevelCount uint32

	// BaseArrayLayer is the first affected array layer.
	BaseArrayLayer uint32

	// ArrayLayerCount is the number of affected array layers.
	ArrayLayerCount uint32
}

// BufferCopy describes a single buffer-to-buffer copy region.
type BufferCopy struct {
	// SrcOffset is the byte offset into the source buffer.
	SrcOffset uint64

	// DstOffset is the byte offset into the destination buffer.
	DstOffset uint64

	// Size is the number of bytes to copy.
	Size uint64
}

// BufferTextureCopy describes a copy region between a buffer and a texture.
type BufferTextureCopy struct {
	// BufferLayout describes how texel data is laid out in the buffer.
	BufferLayout ImageDataLayout

	// TextureBase identifies the texture subresource and origin.
	TextureBase ImageCopyTexture

	// Size is the extent of the copy region.
	Size Extent3D
}

// TextureCopy describes a texture-to-texture copy region.
type TextureCopy struct {
	// SrcBase identifies the source texture subresource and origin.
	SrcBase ImageCopyTexture

	// DstBase identifies the destination texture subresource and origin.
	DstBase ImageCopyTexture

	// Size is the extent of the copy region.
	Size Extent3D
}

// ImageDataLayout describes how texel data is laid out in a linear buffer.
type ImageDataLayout struct {
	// Offset is the byte offset to the start of the image data.
	Offset uint64

	// BytesPerRow is the stride between rows, in bytes.
	BytesPerRow uint32

	// RowsPerImage is the number of rows per depth slice or array layer.
	RowsPerImage uint32
}

// ImageCopyTexture identifies a texture subresource and origin for a copy.
type ImageCopyTexture struct {
	// Texture is the texture being copied to or from.
	Texture Texture

	// MipLevel is the mip level of the subresource.
	MipLevel uint32

	// Origin is the texel origin of the copy region.
	Origin Origin3D

	// Aspect selects which aspect of the texture is copied.
	Aspect gputypes.TextureAspect
}

// Origin3D is a three-dimensional texel offset.
type Origin3D struct {
	X uint32
	Y uint32
	Z uint32
}

// Extent3D is a three-dimensional size in texels.
type Extent3D struct {
	Width              uint32
	Height             uint32
	DepthOrArrayLayers uint32
}

// MipmapGenerator is an optional capability implemented by command encoders
// that can generate a texture's remaining mip levels from its base level
// within the current copy pass. Backends without a dedicated primitive
// build this from a chain of blits instead of implementing the interface;
// callers fall back to recording their own blit chain when it's absent.
type MipmapGenerator interface {
	// GenerateMipmaps fills every mip level after level 0 of texture by
	// successively downsampling the previous level.
	GenerateMipmaps(texture Texture)
}

// DebugMarkerEncoder is an optional capability implemented by pass encoders
// that can record debug groups and labels into the native command stream
// for capture tools. Callers treat its absence as a silent no-op; the debug
// annotations have no effect on rendering either way.
type DebugMarkerEncoder interface {
	// PushDebugGroup opens a named group enclosing subsequent commands.
	PushDebugGroup(label string)

	// PopDebugGroup closes the innermost open group.
	PopDebugGroup()

	// InsertDebugMarker records a standalone label at the current point.
	InsertDebugMarker(label string)
}
