package types

// AddressMode describes texture coordinate addressing outside [0,1].
type AddressMode uint8

const (
	AddressModeClampToEdge AddressMode = iota
	AddressModeRepeat
	AddressModeMirrorRepeat
)

// FilterMode describes texture filtering (also used as the blit filter,
// blit).
type FilterMode uint8

const (
	FilterModeNearest FilterMode = iota
	FilterModeLinear
)

// MipmapFilterMode describes mipmap filtering.
type MipmapFilterMode uint8

const (
	MipmapFilterModeNearest MipmapFilterMode = iota
	MipmapFilterModeLinear
)

// CompareOp describes a comparison function, used both for depth/stencil
// tests and for comparison samplers.
type CompareOp uint8

const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterEqual
	CompareOpAlways
)

// SamplerDescriptor describes a sampler.
type SamplerDescriptor struct {
	Label         string
	AddressModeU  AddressMode
	AddressModeV  AddressMode
	AddressModeW  AddressMode
	MagFilter     FilterMode
	MinFilter     FilterMode
	MipmapFilter  MipmapFilterMode
	LodMinClamp   float32
	LodMaxClamp   float32
	CompareEnable bool
	Compare       CompareOp
	MaxAnisotropy float32
}

// DefaultSamplerDescriptor returns a reasonable default.
func DefaultSamplerDescriptor() SamplerDescriptor {
	return SamplerDescriptor{
		MagFilter:     FilterModeNearest,
		MinFilter:     FilterModeNearest,
		MipmapFilter:  MipmapFilterModeNearest,
		LodMaxClamp:   1000,
		MaxAnisotropy: 1,
	}
}
