package types

// Color is a linear RGBA color used for clear values and blend constants.
type Color struct {
	R, G, B, A float32
}

var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorRed         = Color{1, 0, 0, 1}
)

// LoadOp describes how an attachment's existing contents are treated at
// the start of a pass.
type LoadOp uint8

const (
	LoadOpLoad LoadOp = iota
	LoadOpClear
	LoadOpDontCare
)

// StoreOp describes how an attachment's contents are preserved at the end
// of a pass.
type StoreOp uint8

const (
	StoreOpStore StoreOp = iota
	StoreOpDontCare
)

// BlendFactor enumerates blend factors.
type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorSrcAlphaSaturate
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
)

// BlendOp enumerates blend operations.
type BlendOp uint8

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// BlendComponent describes blending for one color channel group.
type BlendComponent struct {
	SrcFactor BlendFactor
	DstFactor BlendFactor
	Op        BlendOp
}

// BlendState describes full color blending.
type BlendState struct {
	Color BlendComponent
	Alpha BlendComponent
}

// ColorWriteMask selects which color channels a draw writes.
type ColorWriteMask uint8

const (
	ColorWriteMaskRed ColorWriteMask = 1 << iota
	ColorWriteMaskGreen
	ColorWriteMaskBlue
	ColorWriteMaskAlpha
	ColorWriteMaskAll = ColorWriteMaskRed | ColorWriteMaskGreen | ColorWriteMaskBlue | ColorWriteMaskAlpha
)

// ColorTargetState describes one color attachment slot in a graphics
// pipeline.
type ColorTargetState struct {
	Format    TextureFormat
	Blend     *BlendState
	WriteMask ColorWriteMask
}

// PrimitiveType enumerates how vertices assemble into primitives.
type PrimitiveType uint8

const (
	PrimitiveTypePointList PrimitiveType = iota
	PrimitiveTypeLineList
	PrimitiveTypeLineStrip
	PrimitiveTypeTriangleList
	PrimitiveTypeTriangleStrip
)

// VertexCount returns the number of vertices primCount primitives of this
// topology consume, per primitive-to-vertex-count table.
func (p PrimitiveType) VertexCount(primCount uint32) uint32 {
	switch p {
	case PrimitiveTypeTriangleList:
		return 3 * primCount
	case PrimitiveTypeTriangleStrip, PrimitiveTypeLineStrip:
		if primCount == 0 {
			return 0
		}
		return primCount + 2
	case PrimitiveTypeLineList:
		return 2 * primCount
	case PrimitiveTypePointList:
		return primCount
	default:
		return 0
	}
}

// FillMode enumerates rasterizer fill modes.
type FillMode uint8

const (
	FillModeFill FillMode = iota
	FillModeLine
)

// FrontFace describes the front-face winding order.
type FrontFace uint8

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// CullMode describes which faces to cull.
type CullMode uint8

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

// StencilOp enumerates stencil update operations.
type StencilOp uint8

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementClamp
	StencilOpDecrementClamp
	StencilOpInvert
	StencilOpIncrementWrap
	StencilOpDecrementWrap
)

// StencilFaceState describes stencil behavior for one face.
type StencilFaceState struct {
	Compare     CompareOp
	FailOp      StencilOp
	DepthFailOp StencilOp
	PassOp      StencilOp
}

// DepthStencilState describes depth/stencil testing for a graphics
// pipeline.
type DepthStencilState struct {
	Format            TextureFormat
	DepthTestEnable   bool
	DepthWriteEnable  bool
	DepthCompare      CompareOp
	StencilTestEnable bool
	Front             StencilFaceState
	Back              StencilFaceState
	StencilReadMask   uint8
	StencilWriteMask  uint8
}

// RasterizerState bundles the static rasterizer state a graphics pipeline
// re-applies on bind.
type RasterizerState struct {
	Fill       FillMode
	Cull       CullMode
	Front      FrontFace
	DepthBias  float32
	DepthBiasClamp float32
	SlopeScaleDepthBias float32
}

// MultisampleState describes multisampling.
type MultisampleState struct {
	Count                  uint32
	Mask                   uint64
	AlphaToCoverageEnabled bool
}

// DefaultMultisampleState returns the default (no multisampling) state.
func DefaultMultisampleState() MultisampleState {
	return MultisampleState{Count: 1, Mask: ^uint64(0)}
}

// Viewport describes a render-pass viewport transform.
type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// ScissorRect describes a render-pass scissor rectangle.
type ScissorRect struct {
	X, Y, Width, Height uint32
}
