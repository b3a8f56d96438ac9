package types

// ShaderStage identifies a single programmable stage.
type ShaderStage uint8

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
	ShaderStageCompute
)

// ShaderFormat enumerates the shader bytecode formats a backend may accept:
// SPIRV, HLSL, DXBC, DXIL, MSL, METALLIB, and a backend-private SECRET
// format reserved for an engine's own precompiled blobs.
type ShaderFormat uint32

const (
	ShaderFormatInvalid ShaderFormat = 0
	ShaderFormatSPIRV   ShaderFormat = 1 << iota
	ShaderFormatHLSL
	ShaderFormatDXBC
	ShaderFormatDXIL
	ShaderFormatMSL
	ShaderFormatMetallib
	ShaderFormatSecret
)

// ShaderDescriptor describes a shader module.
// Cross-compilation between formats is an external collaborator's job —
// the descriptor simply carries whichever
// bytecode format the caller's pipeline already targets.
type ShaderDescriptor struct {
	Label              string
	Stage              ShaderStage
	Format             ShaderFormat
	Code               []byte
	EntryPoint         string
	NumSamplers        uint32
	NumStorageTextures uint32
	NumStorageBuffers  uint32
	NumUniformBuffers  uint32
}
