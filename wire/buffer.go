package wire

// --------------------------------------------------------------------------
// Fill Buffer
// --------------------------------------------------------------------------

// Buffer is a fixed-capacity byte buffer with a fill position and a limit.
// It carries the progress of a partially completed non-blocking read or
// write across readiness events: the connection stays stateless, the buffer
// position does not. Window() exposes the unfilled [position, limit) slice
// for the next I/O attempt and Advance() records how many bytes it moved.
//
// Buffer is not safe for concurrent use. A buffer belongs to exactly one
// in-flight command at a time.
type Buffer struct {
	data  []byte
	pos   int
	limit int
}

// NewBuffer creates a buffer of the given capacity with position 0 and the
// limit set to the full capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		data:  make([]byte, capacity),
		limit: capacity,
	}
}

// NewBufferFrom creates a buffer draining the given bytes, e.g. an encoded
// request about to be written. The slice is used directly, not copied.
func NewBufferFrom(data []byte) *Buffer {
	return &Buffer{
		data:  data,
		limit: len(data),
	}
}

// Window returns the unfilled part of the buffer between the current
// position and the limit.
func (b *Buffer) Window() []byte {
	return b.data[b.pos:b.limit]
}

// Advance moves the position forward by n bytes after a successful partial
// read or write.
func (b *Buffer) Advance(n int) {
	b.pos += n
}

// Remaining returns the number of bytes between position and limit.
func (b *Buffer) Remaining() int {
	return b.limit - b.pos
}

// HasRemaining reports whether the buffer still expects bytes.
func (b *Buffer) HasRemaining() bool {
	return b.pos < b.limit
}

// Position returns the current fill position.
func (b *Buffer) Position() int {
	return b.pos
}

// Limit returns the current limit.
func (b *Buffer) Limit() int {
	return b.limit
}

// SetLimit moves the limit, clamped to the buffer capacity. Used after
// parsing a header to size the upcoming body read.
func (b *Buffer) SetLimit(n int) {
	if n > len(b.data) {
		n = len(b.data)
	}
	b.limit = n
}

// Clear resets the position to 0 and the limit to the full capacity.
func (b *Buffer) Clear() {
	b.pos = 0
	b.limit = len(b.data)
}

// ResetForHeader rewinds the buffer to expect the fixed-size message header
// next. This is the transition a connection performs once a request has been
// fully written.
func (b *Buffer) ResetForHeader() {
	b.pos = 0
	b.limit = HeaderSize
}

// Filled returns the bytes accumulated so far, i.e. [0, position).
func (b *Buffer) Filled() []byte {
	return b.data[:b.pos]
}
