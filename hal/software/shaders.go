package software

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/gogpu/gpu/hal"
	"github.com/gogpu/gpu/hal/software/shader"
)

// The software backend has no WGSL or SPIR-V interpreter: real shader
// bodies are accepted (so portable creation code keeps working) but carry
// no executable program, and pipelines built from them rasterize nothing.
// To actually draw, a module's entire WGSL source must be the name of one
// of the Go callback programs registered below — the same convention
// shader's own doc describes, applied at the module boundary.
const (
	shaderSolidColor  = "solid_color"
	shaderVertexColor = "vertex_color"
	shaderTextured    = "textured"
	shaderClearBuffer = "clear_buffer"
	shaderCopyBuffer  = "copy_buffer"
)

// program bundles the callback entry points a module name resolves to.
// A single name covers every stage it defines, so one module can serve as
// both the vertex and fragment module of a pipeline.
type program struct {
	name     string
	vertex   shader.VertexShaderFunc
	fragment shader.FragmentShaderFunc
	compute  shader.ComputeProgram
}

func lookupProgram(source hal.ShaderSource) *program {
	if len(source.SPIRV) > 0 {
		return nil
	}
	switch strings.TrimSpace(source.WGSL) {
	case shaderSolidColor:
		return &program{
			name:     shaderSolidColor,
			vertex:   shader.SolidColorVertexShader,
			fragment: shader.SolidColorFragmentShader,
		}
	case shaderVertexColor:
		return &program{
			name:     shaderVertexColor,
			vertex:   shader.VertexColorVertexShader,
			fragment: shader.VertexColorFragmentShader,
		}
	case shaderTextured:
		return &program{
			name:     shaderTextured,
			vertex:   shader.TexturedVertexShader,
			fragment: shader.TexturedFragmentShader,
		}
	case shaderClearBuffer:
		return &program{
			name: shaderClearBuffer,
			compute: shader.ComputeProgram{
				Dispatch:         shader.ClearBufferCompute,
				ThreadgroupSizeX: 1, ThreadgroupSizeY: 1, ThreadgroupSizeZ: 1,
			},
		}
	case shaderCopyBuffer:
		return &program{
			name: shaderCopyBuffer,
			compute: shader.ComputeProgram{
				Dispatch:         shader.CopyBufferCompute,
				ThreadgroupSizeX: 1, ThreadgroupSizeY: 1, ThreadgroupSizeZ: 1,
			},
		}
	default:
		return nil
	}
}

// decodeUniforms turns the raw bytes of the uniform buffer bound at
// group 0 binding 0 into the typed uniform struct the named program
// expects, falling back to identity-transform defaults when the buffer is
// absent or short. Layout is little-endian float32s in field order.
func (p *program) decodeUniforms(group *bindGroup) any {
	var data []byte
	if group != nil {
		data = group.bufferAt(0)
	}
	switch p.name {
	case shaderSolidColor:
		u := &shader.SolidColorUniforms{MVP: shader.Mat4Identity(), Color: [4]float32{1, 1, 1, 1}}
		if floats := decodeFloats(data, 20); floats != nil {
			copy(u.MVP[:], floats[:16])
			copy(u.Color[:], floats[16:20])
		}
		return u
	case shaderVertexColor:
		u := &shader.VertexColorUniforms{MVP: shader.Mat4Identity()}
		if floats := decodeFloats(data, 16); floats != nil {
			copy(u.MVP[:], floats[:16])
		}
		return u
	case shaderTextured:
		u := &shader.TexturedUniforms{MVP: shader.Mat4Identity()}
		if floats := decodeFloats(data, 16); floats != nil {
			copy(u.MVP[:], floats[:16])
		}
		// The sampled texture rides at group 0 binding 1; nearest
		// sampling ignores whatever sampler the layout also binds.
		if group != nil {
			if view := group.textureViewAt(1); view != nil && len(view.tex.mips) > 0 {
				mip := view.tex.mips[0]
				u.TextureData = mip.data
				u.TextureWidth = mip.width
				u.TextureHeight = mip.height
			}
		}
		return u
	case shaderClearBuffer:
		u := shader.ClearBufferUniforms{}
		if len(data) > 0 {
			u.Value = data[0]
		}
		return u
	default:
		return nil
	}
}

func decodeFloats(data []byte, n int) []float32 {
	if len(data) < n*4 {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}
