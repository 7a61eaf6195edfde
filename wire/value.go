package wire

// --------------------------------------------------------------------------
// Protocol Constants
// --------------------------------------------------------------------------

const (
	// FieldHeaderSize is the serialized size of one field header
	// (4 byte field length + 1 byte field type)
	FieldHeaderSize = 5

	// OperationHeaderSize is the serialized size of one operation header
	// (4 byte operation length + 1 byte op + 1 byte particle type +
	// 1 byte version + 1 byte bin name length)
	OperationHeaderSize = 8
)

// --------------------------------------------------------------------------
// Value Interface
// --------------------------------------------------------------------------

// Value is the size-estimation surface of the value serialization layer.
// The transport core only needs to know how many bytes a value will occupy
// on the wire; the actual encoding is done by the serialization layer above.
type Value interface {
	// EstimateSize returns the exact number of bytes the encoded value
	// occupies in a frame
	EstimateSize() int
}

// --------------------------------------------------------------------------
// Value Implementations
// --------------------------------------------------------------------------

// NullValue represents an absent value. It occupies no payload bytes.
type NullValue struct{}

func (v NullValue) EstimateSize() int {
	return 0
}

// IntegerValue encodes as a fixed-width 8 byte integer.
type IntegerValue int64

func (v IntegerValue) EstimateSize() int {
	return 8
}

// StringValue encodes as the raw UTF-8 bytes of the string.
type StringValue string

func (v StringValue) EstimateSize() int {
	return len(v)
}

// BytesValue encodes as the raw bytes.
type BytesValue []byte

func (v BytesValue) EstimateSize() int {
	return len(v)
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// EstimateSizeUtf8 returns the number of bytes the string occupies on the
// wire. Go strings already hold UTF-8, so this is the byte length.
func EstimateSizeUtf8(s string) int {
	return len(s)
}
