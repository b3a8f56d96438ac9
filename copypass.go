package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpu/core"
	"github.com/gogpu/gpu/hal"
)

// TextureTransferRegion describes the texture subresource and extent a
// buffer<->texture transfer touches, plus the linear layout of the buffer
// side of the copy.
type TextureTransferRegion struct {
	MipLevel     uint32
	Origin       [3]uint32
	Size         [3]uint32
	BytesPerRow  uint32
	RowsPerImage uint32
}

// BufferTransferRegion describes a byte range within a buffer.
type BufferTransferRegion struct {
	Offset uint64
	Size   uint64
}

// CopyPassEncoder records upload/download/copy commands. Valid only between
// CommandEncoder.BeginCopyPass and CopyPassEncoder.End; every call made
// outside that bracket is a WrongPhase error, logged and dropped rather
// than panicking.
type CopyPassEncoder struct {
	encoder *CommandEncoder
	ended   bool
}

// BeginCopyPass opens the COPY phase. The encoder must be OUTSIDE any other
// pass.
func (e *CommandEncoder) BeginCopyPass() (*CopyPassEncoder, error) {
	if e.released {
		return nil, ErrReleased
	}
	if e.copyPass != nil {
		return nil, fmt.Errorf("gpu: WrongPhase: a copy pass is already active")
	}
	if e.core.Status() != core.CommandEncoderStatusRecording {
		return nil, fmt.Errorf("gpu: WrongPhase: cannot begin copy pass")
	}
	cp := &CopyPassEncoder{encoder: e}
	e.copyPass = cp
	return cp, nil
}

// End closes the COPY phase, returning the encoder to OUTSIDE.
func (p *CopyPassEncoder) End() {
	if p.ended {
		return
	}
	p.ended = true
	if p.encoder != nil {
		p.encoder.copyPass = nil
	}
}

func (p *CopyPassEncoder) rawEncoder() hal.CommandEncoder {
	if p.ended || p.encoder == nil || p.encoder.released {
		return nil
	}
	return p.encoder.core.RawEncoder()
}

// UploadToBuffer copies region.Size bytes from src (a host-visible upload
// transfer buffer) at region.Offset into dst at dstOffset.
func (p *CopyPassEncoder) UploadToBuffer(src *TransferBuffer, region BufferTransferRegion, dst *Buffer, dstOffset uint64) {
	raw := p.rawEncoder()
	if raw == nil || src == nil || dst == nil {
		return
	}
	srcBuf := src.raw()
	dstBuf := dst.halBuffer()
	if srcBuf == nil || dstBuf == nil {
		return
	}
	p.encoder.track(src.activeRef())
	p.encoder.track(dst.activeRef())
	raw.CopyBufferToBuffer(srcBuf, dstBuf, []hal.BufferCopy{
		{SrcOffset: region.Offset, DstOffset: dstOffset, Size: region.Size},
	})
}

// DownloadFromBuffer copies region.Size bytes from src at srcOffset into dst
// (a host-visible download transfer buffer) at region.Offset. The transfer
// buffer's host-visible mirror is refreshed once the command buffer this
// copy pass belongs to has been submitted and waited on.
func (p *CopyPassEncoder) DownloadFromBuffer(src *Buffer, srcOffset uint64, dst *TransferBuffer, region BufferTransferRegion) {
	raw := p.rawEncoder()
	if raw == nil || src == nil || dst == nil {
		return
	}
	srcBuf := src.halBuffer()
	dstBuf := dst.raw()
	if srcBuf == nil || dstBuf == nil {
		return
	}
	p.encoder.track(src.activeRef())
	p.encoder.track(dst.activeRef())
	raw.CopyBufferToBuffer(srcBuf, dstBuf, []hal.BufferCopy{
		{SrcOffset: srcOffset, DstOffset: region.Offset, Size: region.Size},
	})
	p.encoder.trackDownload(dst)
}

// UploadToTexture copies texel data from src (a host-visible upload transfer
// buffer) at bufferOffset into dst at the subresource/origin/extent
// described by region.
func (p *CopyPassEncoder) UploadToTexture(src *TransferBuffer, bufferOffset uint64, dst *Texture, region TextureTransferRegion) {
	raw := p.rawEncoder()
	if raw == nil || src == nil || dst == nil {
		return
	}
	srcBuf := src.raw()
	dstTex := dst.Raw()
	if srcBuf == nil || dstTex == nil {
		return
	}
	p.encoder.track(src.activeRef())
	p.encoder.track(dst.activeRef())
	raw.CopyBufferToTexture(srcBuf, dstTex, []hal.BufferTextureCopy{
		toBufferTextureCopy(bufferOffset, dstTex, region),
	})
}

// DownloadFromTexture copies the subresource/origin/extent described by
// region out of src into dst (a host-visible download transfer buffer) at
// bufferOffset.
func (p *CopyPassEncoder) DownloadFromTexture(src *Texture, region TextureTransferRegion, dst *TransferBuffer, bufferOffset uint64) {
	raw := p.rawEncoder()
	if raw == nil || src == nil || dst == nil {
		return
	}
	srcTex := src.Raw()
	dstBuf := dst.raw()
	if srcTex == nil || dstBuf == nil {
		return
	}
	p.encoder.track(src.activeRef())
	p.encoder.track(dst.activeRef())
	raw.CopyTextureToBuffer(srcTex, dstBuf, []hal.BufferTextureCopy{
		toBufferTextureCopy(bufferOffset, srcTex, region),
	})
	p.encoder.trackDownload(dst)
}

// CopyTextureToTexture copies region.Size texels from src at region's source
// origin/mip to dst at region's destination origin/mip.
func (p *CopyPassEncoder) CopyTextureToTexture(src *Texture, srcRegion TextureTransferRegion, dst *Texture, dstRegion TextureTransferRegion) {
	raw := p.rawEncoder()
	if raw == nil || src == nil || dst == nil {
		return
	}
	srcTex := src.Raw()
	dstTex := dst.Raw()
	if srcTex == nil || dstTex == nil {
		return
	}
	p.encoder.track(src.activeRef())
	p.encoder.track(dst.activeRef())
	raw.CopyTextureToTexture(srcTex, dstTex, []hal.TextureCopy{
		{
			SrcBase: hal.ImageCopyTexture{
				Texture:  srcTex,
				MipLevel: srcRegion.MipLevel,
				Origin:   hal.Origin3D{X: srcRegion.Origin[0], Y: srcRegion.Origin[1], Z: srcRegion.Origin[2]},
				Aspect:   gputypes.TextureAspectAll,
			},
			DstBase: hal.ImageCopyTexture{
				Texture:  dstTex,
				MipLevel: dstRegion.MipLevel,
				Origin:   hal.Origin3D{X: dstRegion.Origin[0], Y: dstRegion.Origin[1], Z: dstRegion.Origin[2]},
				Aspect:   gputypes.TextureAspectAll,
			},
			Size: hal.Extent3D{Width: srcRegion.Size[0], Height: srcRegion.Size[1], DepthOrArrayLayers: srcRegion.Size[2]},
		},
	})
}

// GenerateMipmaps generates the remaining mip levels of texture from its
// base level. Backends without a dedicated mipmap-generation primitive
// implement this as a chain of blits; this neutral layer delegates to the
// HAL, which is responsible for the backend-appropriate strategy.
func (p *CopyPassEncoder) GenerateMipmaps(texture *Texture) error {
	raw := p.rawEncoder()
	if raw == nil || texture == nil {
		return fmt.Errorf("gpu: WrongPhase: cannot generate mipmaps outside a copy pass")
	}
	tex := texture.Raw()
	if tex == nil {
		return ErrReleased
	}
	p.encoder.track(texture.activeRef())
	generator, ok := raw.(hal.MipmapGenerator)
	if !ok {
		return fmt.Errorf("gpu: backend does not support mipmap generation")
	}
	generator.GenerateMipmaps(tex)
	return nil
}

func toBufferTextureCopy(bufferOffset uint64, tex hal.Texture, region TextureTransferRegion) hal.BufferTextureCopy {
	return hal.BufferTextureCopy{
		BufferLayout: hal.ImageDataLayout{
			Offset:       bufferOffset,
			BytesPerRow:  region.BytesPerRow,
			RowsPerImage: region.RowsPerImage,
		},
		TextureBase: hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: region.MipLevel,
			Origin:   hal.Origin3D{X: region.Origin[0], Y: region.Origin[1], Z: region.Origin[2]},
			Aspect:   gputypes.TextureAspectAll,
		},
		Size: hal.Extent3D{Width: region.Size[0], Height: region.Size[1], DepthOrArrayLayers: region.Size[2]},
	}
}
