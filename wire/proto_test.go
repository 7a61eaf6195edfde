package wire

import (
	"testing"
)

// TestProtoHeaderRoundTrip tests that encoded headers parse back to the
// original message type and body length
func TestProtoHeaderRoundTrip(t *testing.T) {
	lengths := []int64{0, 1, 8, 1024, 1<<48 - 1}

	for _, bodyLen := range lengths {
		buf := make([]byte, HeaderSize)
		if err := EncodeProtoHeader(buf, MsgTypeMessage, bodyLen); err != nil {
			t.Fatalf("EncodeProtoHeader(%d) failed: %v", bodyLen, err)
		}

		msgType, parsedLen, err := ParseProtoHeader(buf)
		if err != nil {
			t.Fatalf("ParseProtoHeader failed for body length %d: %v", bodyLen, err)
		}
		if msgType != MsgTypeMessage {
			t.Errorf("message type = %d, want %d", msgType, MsgTypeMessage)
		}
		if parsedLen != bodyLen {
			t.Errorf("body length = %d, want %d", parsedLen, bodyLen)
		}
	}
}

// TestProtoHeaderErrors tests the header validation paths
func TestProtoHeaderErrors(t *testing.T) {
	t.Run("ShortBuffer", func(t *testing.T) {
		if err := EncodeProtoHeader(make([]byte, HeaderSize-1), MsgTypeMessage, 1); err == nil {
			t.Error("EncodeProtoHeader accepted a short buffer")
		}
		if _, _, err := ParseProtoHeader(make([]byte, HeaderSize-1)); err == nil {
			t.Error("ParseProtoHeader accepted a short buffer")
		}
	})

	t.Run("BodyLengthOutOfRange", func(t *testing.T) {
		if err := EncodeProtoHeader(make([]byte, HeaderSize), MsgTypeMessage, -1); err == nil {
			t.Error("EncodeProtoHeader accepted a negative body length")
		}
		if err := EncodeProtoHeader(make([]byte, HeaderSize), MsgTypeMessage, 1<<48); err == nil {
			t.Error("EncodeProtoHeader accepted an oversized body length")
		}
	})

	t.Run("WrongVersion", func(t *testing.T) {
		buf := make([]byte, HeaderSize)
		if err := EncodeProtoHeader(buf, MsgTypeMessage, 10); err != nil {
			t.Fatalf("EncodeProtoHeader failed: %v", err)
		}
		buf[0] = ProtoVersion + 1
		if _, _, err := ParseProtoHeader(buf); err == nil {
			t.Error("ParseProtoHeader accepted an unsupported protocol version")
		}
	})
}
