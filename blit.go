package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TextureRegion identifies a texture slice — a (texture, mipLevel, layer)
// tuple — plus the rectangular extent within it that a Blit reads from or
// writes to.
type TextureRegion struct {
	Texture  *Texture
	MipLevel uint32
	Layer    uint32
	X, Y     uint32
	Width    uint32
	Height   uint32
}

// blitResources holds the device-owned state behind the internal blit
// helper: a cached fullscreen render pipeline keyed by destination format,
// and two sampler caches (nearest/linear). The vertex/fragment modules are
// supplied by the application via SetBlitShaders — this layer does not
// author or cross-compile shader source.
type blitResources struct {
	vertex   *ShaderModule
	fragment *ShaderModule

	samplerNearest *Sampler
	samplerLinear  *Sampler

	pipelines map[TextureFormat]*RenderPipeline
}

// SetBlitShaders installs the fullscreen-triangle vertex shader and the
// texture-sampling fragment shader the internal Blit helper compiles its
// per-destination-format pipeline cache from. Must be
// called once before the first Blit call on this device; Blit reports
// CompilationFailed if no shaders have been installed, since a blit
// pipeline cannot be built without them.
func (d *Device) SetBlitShaders(vertex, fragment *ShaderModule) {
	if d.blit.pipelines == nil {
		d.blit.pipelines = make(map[TextureFormat]*RenderPipeline)
	}
	d.blit.vertex = vertex
	d.blit.fragment = fragment
}

// blitSampler returns the device's cached nearest or linear sampler,
// creating it on first use.
func (d *Device) blitSampler(filter FilterMode) (*Sampler, error) {
	if filter == gputypes.FilterModeLinear {
		if d.blit.samplerLinear != nil {
			return d.blit.samplerLinear, nil
		}
		s, err := d.CreateSampler(&SamplerDescriptor{
			Label:        "blit-linear",
			AddressModeU: gputypes.AddressModeClampToEdge,
			AddressModeV: gputypes.AddressModeClampToEdge,
			AddressModeW: gputypes.AddressModeClampToEdge,
			MagFilter:    gputypes.FilterModeLinear,
			MinFilter:    gputypes.FilterModeLinear,
		})
		if err != nil {
			return nil, fmt.Errorf("gpu: blit: create linear sampler: %w", err)
		}
		d.blit.samplerLinear = s
		return s, nil
	}

	if d.blit.samplerNearest != nil {
		return d.blit.samplerNearest, nil
	}
	s, err := d.CreateSampler(&SamplerDescriptor{
		Label:        "blit-nearest",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: blit: create nearest sampler: %w", err)
	}
	d.blit.samplerNearest = s
	return s, nil
}

// blitPipelineFor returns the cached fullscreen pipeline targeting format,
// building and caching one on first request ("a cached pipeline keyed
// by destination format").
func (d *Device) blitPipelineFor(format TextureFormat) (*RenderPipeline, error) {
	if d.blit.vertex == nil || d.blit.fragment == nil {
		return nil, fmt.Errorf("gpu: blit: CompilationFailed: no blit shaders installed, call SetBlitShaders first")
	}
	if d.blit.pipelines == nil {
		d.blit.pipelines = make(map[TextureFormat]*RenderPipeline)
	}
	if p, ok := d.blit.pipelines[format]; ok {
		return p, nil
	}

	layout, err := d.CreateBindGroupLayout(&BindGroupLayoutDescriptor{
		Label: "blit-bgl",
		Entries: []BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
			{
				Binding:    1,
				Visibility: ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: blit: create bind group layout: %w", err)
	}
	defer layout.Release()

	pipelineLayout, err := d.CreatePipelineLayout(&PipelineLayoutDescriptor{
		Label:            "blit-pipeline-layout",
		BindGroupLayouts: []*BindGroupLayout{layout},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: blit: create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	pipeline, err := d.CreateRenderPipeline(&RenderPipelineDescriptor{
		Label:  "blit-pipeline",
		Layout: pipelineLayout,
		Vertex: VertexState{
			Module:     d.blit.vertex,
			EntryPoint: "vs_main",
		},
		Primitive: PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
		},
		Fragment: &FragmentState{
			Module:     d.blit.fragment,
			EntryPoint: "fs_main",
			Targets: []ColorTargetState{
				{Format: format, WriteMask: gputypes.ColorWriteMaskAll},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: blit: create pipeline: %w", err)
	}

	d.blit.pipelines[format] = pipeline
	return pipeline, nil
}

// Blit performs a scaled (or same-size) texture-to-texture copy through a
// one-triangle fullscreen render pass, sampling src at the requested
// filter and writing into dst. Legal only outside any other pass; the
// RENDER pass it opens is closed again before returning. cycle is
// forwarded to dst's container exactly as any other write-style operation
// would forward it.
func (e *CommandEncoder) Blit(src, dst TextureRegion, filter FilterMode, cycle bool) error {
	if e.released {
		return ErrReleased
	}
	if e.copyPass != nil {
		return fmt.Errorf("gpu: WrongPhase: blit requires the OUTSIDE phase")
	}
	if src.Texture == nil || dst.Texture == nil {
		return fmt.Errorf("gpu: blit: src and dst textures are required")
	}

	d := e.device
	dst.Texture.Cycle(cycle)
	e.track(src.Texture.activeRef())
	e.track(dst.Texture.activeRef())

	pipeline, err := d.blitPipelineFor(dst.Texture.Format())
	if err != nil {
		return err
	}
	sampler, err := d.blitSampler(filter)
	if err != nil {
		return err
	}

	srcView, err := d.CreateTextureView(src.Texture, &TextureViewDescriptor{
		BaseMipLevel:    src.MipLevel,
		MipLevelCount:   1,
		BaseArrayLayer:  src.Layer,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return fmt.Errorf("gpu: blit: create src view: %w", err)
	}
	defer srcView.Release()

	dstView, err := d.CreateTextureView(dst.Texture, &TextureViewDescriptor{
		BaseMipLevel:    dst.MipLevel,
		MipLevelCount:   1,
		BaseArrayLayer:  dst.Layer,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return fmt.Errorf("gpu: blit: create dst view: %w", err)
	}
	defer dstView.Release()

	// The bind group only needs to live for pass recording; SetBindGroup's
	// forwarding of its contents to the HAL encoder is the same seam
	// documented on RenderPassEncoder.SetBindGroup.
	bgLayout, err := d.CreateBindGroupLayout(&BindGroupLayoutDescriptor{
		Label: "blit-bgl",
		Entries: []BindGroupLayoutEntry{
			{Binding: 0, Visibility: ShaderStageFragment, Sampler: &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering}},
			{Binding: 1, Visibility: ShaderStageFragment, Texture: &gputypes.TextureBindingLayout{SampleType: gputypes.TextureSampleTypeFloat, ViewDimension: gputypes.TextureViewDimension2D}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: blit: create bind group layout: %w", err)
	}
	defer bgLayout.Release()

	bindGroup, err := d.CreateBindGroup(&BindGroupDescriptor{
		Label:  "blit-bind-group",
		Layout: bgLayout,
		Entries: []BindGroupEntry{
			{Binding: 0, Sampler: sampler},
			{Binding: 1, TextureView: srcView},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: blit: create bind group: %w", err)
	}
	defer bindGroup.Release()

	pass, err := e.BeginRenderPass(&RenderPassDescriptor{
		Label: "blit-pass",
		ColorAttachments: []RenderPassColorAttachment{
			{
				View:    dstView,
				LoadOp:  gputypes.LoadOpLoad,
				StoreOp: gputypes.StoreOpStore,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: blit: begin render pass: %w", err)
	}

	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	w, h := dst.Width, dst.Height
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	pass.SetViewport(float32(dst.X), float32(dst.Y), float32(w), float32(h), 0, 1)
	pass.SetScissorRect(dst.X, dst.Y, w, h)
	pass.Draw(3, 1, 0, 0)

	return pass.End()
}
