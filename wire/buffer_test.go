package wire

import (
	"bytes"
	"testing"
)

// TestBufferFillAcrossEvents tests that fill progress carried in the buffer
// position survives multiple partial fills, as it must across would-block
// boundaries
func TestBufferFillAcrossEvents(t *testing.T) {
	buf := NewBuffer(10)

	chunks := [][]byte{{1, 2, 3}, {4}, {5, 6, 7, 8, 9, 10}}
	for _, chunk := range chunks {
		if !buf.HasRemaining() {
			t.Fatal("buffer full before all chunks were applied")
		}
		n := copy(buf.Window(), chunk)
		if n != len(chunk) {
			t.Fatalf("window accepted %d bytes, want %d", n, len(chunk))
		}
		buf.Advance(n)
	}

	if buf.HasRemaining() {
		t.Errorf("buffer still expects %d bytes after full fill", buf.Remaining())
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if !bytes.Equal(buf.Filled(), want) {
		t.Errorf("Filled() = %v, want %v", buf.Filled(), want)
	}
}

// TestBufferResetForHeader tests the write-completion transition to the
// fixed-size header read
func TestBufferResetForHeader(t *testing.T) {
	buf := NewBufferFrom(make([]byte, 64))
	buf.Advance(64)
	if buf.HasRemaining() {
		t.Fatal("drained buffer must not have remaining bytes")
	}

	buf.ResetForHeader()
	if buf.Position() != 0 {
		t.Errorf("position = %d, want 0", buf.Position())
	}
	if buf.Limit() != HeaderSize {
		t.Errorf("limit = %d, want %d", buf.Limit(), HeaderSize)
	}
	if buf.Remaining() != HeaderSize {
		t.Errorf("remaining = %d, want %d", buf.Remaining(), HeaderSize)
	}
}

// TestBufferLimits tests Clear and SetLimit behavior
func TestBufferLimits(t *testing.T) {
	buf := NewBuffer(16)

	buf.SetLimit(4)
	if buf.Remaining() != 4 {
		t.Errorf("remaining = %d, want 4", buf.Remaining())
	}

	// A limit beyond the capacity is clamped.
	buf.SetLimit(100)
	if buf.Limit() != 16 {
		t.Errorf("limit = %d, want 16", buf.Limit())
	}

	buf.Advance(5)
	buf.Clear()
	if buf.Position() != 0 || buf.Limit() != 16 {
		t.Errorf("Clear() left position %d limit %d", buf.Position(), buf.Limit())
	}
}
