package gpu

import (
	"testing"

	"github.com/gogpu/gpu/internal/container"
)

func TestCreateTransferBufferValidatesDescriptor(t *testing.T) {
	d := &Device{}

	if _, err := d.CreateTransferBuffer(nil); err == nil {
		t.Error("expected an error for a nil descriptor")
	}
	if _, err := d.CreateTransferBuffer(&TransferBufferDescriptor{Size: 0}); err == nil {
		t.Error("expected an error for a zero-size descriptor")
	}
	if _, err := d.CreateTransferBuffer(&TransferBufferDescriptor{Size: 256}); err == nil {
		t.Error("expected an error when the device has no HAL backing")
	}
}

// newTestTransferBuffer builds a TransferBuffer whose ring is backed by a
// plain byte-slice mirror with no real hal.Buffer, for exercising the
// Map/Unmap/SetTransferData/GetTransferData bookkeeping without a live HAL
// device.
func newTestTransferBuffer(direction TransferDirection, size uint64) *TransferBuffer {
	ring := container.New("test-transfer", true, func() *transferInstance {
		return &transferInstance{data: make([]byte, size)}
	})
	return &TransferBuffer{direction: direction, size: size, ring: ring}
}

func TestSetAndGetTransferData(t *testing.T) {
	tb := newTestTransferBuffer(TransferBufferUpload, 16)
	d := &Device{}

	payload := []byte{1, 2, 3, 4}
	if err := d.SetTransferData(tb, payload, 4, false); err != nil {
		t.Fatalf("SetTransferData: %v", err)
	}

	out := make([]byte, 4)
	if err := d.GetTransferData(tb, out, 4); err != nil {
		t.Fatalf("GetTransferData: %v", err)
	}
	for i, b := range payload {
		if out[i] != b {
			t.Errorf("byte %d = %d, want %d", i, out[i], b)
		}
	}
}

func TestSetTransferDataRejectsOverflow(t *testing.T) {
	tb := newTestTransferBuffer(TransferBufferUpload, 4)
	d := &Device{}

	if err := d.SetTransferData(tb, []byte{1, 2, 3, 4, 5}, 0, false); err == nil {
		t.Error("expected an overflow error when src+offset exceeds the transfer buffer size")
	}
}

func TestMapTransferBufferReturnsHostMirror(t *testing.T) {
	tb := newTestTransferBuffer(TransferBufferDownload, 8)
	d := &Device{}

	data, err := d.MapTransferBuffer(tb, false)
	if err != nil {
		t.Fatalf("MapTransferBuffer: %v", err)
	}
	if len(data) != 8 {
		t.Fatalf("mapped data len = %d, want 8", len(data))
	}
	if !tb.mapped {
		t.Error("MapTransferBuffer should mark the buffer mapped")
	}

	d.UnmapTransferBuffer(tb)
	if tb.mapped {
		t.Error("UnmapTransferBuffer should clear the mapped flag")
	}
}
