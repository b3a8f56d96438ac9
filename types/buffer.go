package types

// BufferUsage describes the intended use(s) of a buffer.
type BufferUsage uint32

const (
	// BufferUsageVertex allows use as a vertex buffer.
	BufferUsageVertex BufferUsage = 1 << iota
	// BufferUsageIndex allows use as an index buffer.
	BufferUsageIndex
	// BufferUsageIndirect allows use as an indirect draw/dispatch buffer.
	BufferUsageIndirect
	// BufferUsageGraphicsStorageRead allows read-only binding in the
	// vertex/fragment stages.
	BufferUsageGraphicsStorageRead
	// BufferUsageComputeStorageRead allows read-only binding in compute.
	BufferUsageComputeStorageRead
	// BufferUsageComputeStorageWrite allows read-write binding in compute.
	BufferUsageComputeStorageWrite
)

// BufferDescriptor describes a buffer.
type BufferDescriptor struct {
	Label string
	Size  uint64
	Usage BufferUsage
}

// TransferDirection tags a TransferBuffer as an upload or download staging
// area.
type TransferDirection uint8

const (
	TransferUpload TransferDirection = iota
	TransferDownload
)

// TransferBufferDescriptor describes a transfer buffer.
type TransferBufferDescriptor struct {
	Label     string
	Size      uint64
	Direction TransferDirection
}

// IndexElementSize is the width of an index buffer element, in bytes.
type IndexElementSize uint8

const (
	IndexElementSize16 IndexElementSize = 2
	IndexElementSize32 IndexElementSize = 4
)

// IndirectDrawCommand is the wire layout consumed by indirect draws: four
// u32 fields.
type IndirectDrawCommand struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

// IndexedIndirectDrawCommand is the wire layout consumed by indexed
// indirect draws: five u32 fields.
type IndexedIndirectDrawCommand struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	FirstInstance uint32
}
