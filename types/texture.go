package types

// TextureFormat enumerates the neutral texture formats, including sRGB,
// BC1-7, and depth/stencil variants.
type TextureFormat uint32

const (
	TextureFormatInvalid TextureFormat = iota

	// 8-bit formats
	TextureFormatR8Unorm
	TextureFormatR8Snorm
	TextureFormatR8Uint
	TextureFormatR8Sint

	// 16-bit formats
	TextureFormatR16Uint
	TextureFormatR16Sint
	TextureFormatR16Float
	TextureFormatRG8Unorm
	TextureFormatRG8Snorm
	TextureFormatRG8Uint
	TextureFormatRG8Sint

	// 32-bit formats
	TextureFormatR32Uint
	TextureFormatR32Sint
	TextureFormatR32Float
	TextureFormatRG16Uint
	TextureFormatRG16Sint
	TextureFormatRG16Float
	TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSrgb
	TextureFormatRGBA8Snorm
	TextureFormatRGBA8Uint
	TextureFormatRGBA8Sint
	TextureFormatBGRA8Unorm
	TextureFormatBGRA8UnormSrgb

	// Packed formats
	TextureFormatRGB10A2Unorm

	// 64-bit formats
	TextureFormatRG32Uint
	TextureFormatRG32Sint
	TextureFormatRG32Float
	TextureFormatRGBA16Uint
	TextureFormatRGBA16Sint
	TextureFormatRGBA16Float

	// 128-bit formats
	TextureFormatRGBA32Uint
	TextureFormatRGBA32Sint
	TextureFormatRGBA32Float

	// Depth/stencil formats
	TextureFormatD16Unorm
	TextureFormatD24Unorm
	TextureFormatD32Float
	TextureFormatD24UnormS8Uint
	TextureFormatD32FloatS8Uint

	// BC compressed formats
	TextureFormatBC1RGBAUnorm
	TextureFormatBC1RGBAUnormSrgb
	TextureFormatBC2RGBAUnorm
	TextureFormatBC2RGBAUnormSrgb
	TextureFormatBC3RGBAUnorm
	TextureFormatBC3RGBAUnormSrgb
	TextureFormatBC4RUnorm
	TextureFormatBC4RSnorm
	TextureFormatBC5RGUnorm
	TextureFormatBC5RGSnorm
	TextureFormatBC6HRGBUfloat
	TextureFormatBC6HRGBFloat
	TextureFormatBC7RGBAUnorm
	TextureFormatBC7RGBAUnormSrgb
)

// blockInfo describes a format's texel block: its byte size and the pixel
// footprint of one block (1x1 for all uncompressed formats here).
type blockInfo struct {
	bytes         uint32
	blockW, blockH uint32
	depth, stencil bool
}

var formatTable = map[TextureFormat]blockInfo{
	TextureFormatR8Unorm:  {bytes: 1, blockW: 1, blockH: 1},
	TextureFormatR8Snorm:  {bytes: 1, blockW: 1, blockH: 1},
	TextureFormatR8Uint:   {bytes: 1, blockW: 1, blockH: 1},
	TextureFormatR8Sint:   {bytes: 1, blockW: 1, blockH: 1},

	TextureFormatR16Uint:  {bytes: 2, blockW: 1, blockH: 1},
	TextureFormatR16Sint:  {bytes: 2, blockW: 1, blockH: 1},
	TextureFormatR16Float: {bytes: 2, blockW: 1, blockH: 1},
	TextureFormatRG8Unorm: {bytes: 2, blockW: 1, blockH: 1},
	TextureFormatRG8Snorm: {bytes: 2, blockW: 1, blockH: 1},
	TextureFormatRG8Uint:  {bytes: 2, blockW: 1, blockH: 1},
	TextureFormatRG8Sint:  {bytes: 2, blockW: 1, blockH: 1},

	TextureFormatR32Uint:        {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatR32Sint:        {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatR32Float:       {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRG16Uint:       {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRG16Sint:       {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRG16Float:      {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRGBA8Unorm:     {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRGBA8UnormSrgb: {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRGBA8Snorm:     {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRGBA8Uint:      {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRGBA8Sint:      {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatBGRA8Unorm:     {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatBGRA8UnormSrgb: {bytes: 4, blockW: 1, blockH: 1},
	TextureFormatRGB10A2Unorm:   {bytes: 4, blockW: 1, blockH: 1},

	TextureFormatRG32Uint:    {bytes: 8, blockW: 1, blockH: 1},
	TextureFormatRG32Sint:    {bytes: 8, blockW: 1, blockH: 1},
	TextureFormatRG32Float:   {bytes: 8, blockW: 1, blockH: 1},
	TextureFormatRGBA16Uint:  {bytes: 8, blockW: 1, blockH: 1},
	TextureFormatRGBA16Sint:  {bytes: 8, blockW: 1, blockH: 1},
	TextureFormatRGBA16Float: {bytes: 8, blockW: 1, blockH: 1},

	TextureFormatRGBA32Uint:  {bytes: 16, blockW: 1, blockH: 1},
	TextureFormatRGBA32Sint:  {bytes: 16, blockW: 1, blockH: 1},
	TextureFormatRGBA32Float: {bytes: 16, blockW: 1, blockH: 1},

	TextureFormatD16Unorm:       {bytes: 2, blockW: 1, blockH: 1, depth: true},
	TextureFormatD24Unorm:       {bytes: 4, blockW: 1, blockH: 1, depth: true},
	TextureFormatD32Float:       {bytes: 4, blockW: 1, blockH: 1, depth: true},
	TextureFormatD24UnormS8Uint: {bytes: 4, blockW: 1, blockH: 1, depth: true, stencil: true},
	TextureFormatD32FloatS8Uint: {bytes: 8, blockW: 1, blockH: 1, depth: true, stencil: true},

	TextureFormatBC1RGBAUnorm:     {bytes: 8, blockW: 4, blockH: 4},
	TextureFormatBC1RGBAUnormSrgb: {bytes: 8, blockW: 4, blockH: 4},
	TextureFormatBC2RGBAUnorm:     {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC2RGBAUnormSrgb: {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC3RGBAUnorm:     {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC3RGBAUnormSrgb: {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC4RUnorm:        {bytes: 8, blockW: 4, blockH: 4},
	TextureFormatBC4RSnorm:        {bytes: 8, blockW: 4, blockH: 4},
	TextureFormatBC5RGUnorm:       {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC5RGSnorm:       {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC6HRGBUfloat:    {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC6HRGBFloat:     {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC7RGBAUnorm:     {bytes: 16, blockW: 4, blockH: 4},
	TextureFormatBC7RGBAUnormSrgb: {bytes: 16, blockW: 4, blockH: 4},
}

// TexelBlockSize returns the byte size of one texel block. Unknown formats
// return 0.
func TexelBlockSize(f TextureFormat) uint32 {
	return formatTable[f].bytes
}

// BlockDim returns the pixel footprint of one texel block (4x4 for BC
// formats, 1x1 otherwise) — needed to size compressed mip levels correctly.
func BlockDim(f TextureFormat) (w, h uint32) {
	info := formatTable[f]
	if info.blockW == 0 {
		return 1, 1
	}
	return info.blockW, info.blockH
}

// HasDepth reports whether the format carries a depth component.
func HasDepth(f TextureFormat) bool { return formatTable[f].depth }

// HasStencil reports whether the format carries a stencil component.
func HasStencil(f TextureFormat) bool { return formatTable[f].stencil }

// TextureDimension describes texture dimensionality.
type TextureDimension uint8

const (
	TextureDimension1D TextureDimension = iota
	TextureDimension2D
	TextureDimension3D
	TextureDimensionCube
)

// TextureUsage flags.
type TextureUsage uint32

const (
	TextureUsageSampler TextureUsage = 1 << iota
	TextureUsageColorTarget
	TextureUsageDepthStencilTarget
	TextureUsageGraphicsStorageRead
	TextureUsageComputeStorageRead
	TextureUsageComputeStorageWrite
)

// TextureDescriptor describes a texture.
type TextureDescriptor struct {
	Label         string
	Size          Extent3D
	Dimension     TextureDimension
	Format        TextureFormat
	Usage         TextureUsage
	MipLevelCount uint32
	SampleCount   uint32
	LayerCount    uint32
}

// Extent3D describes a 3D size.
type Extent3D struct {
	Width, Height, Depth uint32
}

// Origin3D describes a 3D origin for copy operations.
type Origin3D struct {
	X, Y, Z uint32
}
