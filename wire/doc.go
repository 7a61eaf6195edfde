// Package wire implements the protocol framing primitives of the kvwire
// transport core: exact pre-serialization size computation for batch write
// entries, the fixed 8-byte message header every response starts with, and
// the position/limit byte buffer the non-blocking read and write paths are
// driven through.
//
// The size calculator is pure computation with no I/O. Servers reject
// malformed frames, so the computed sizes must be byte-exact: the caller
// pre-allocates a send buffer of exactly the returned size and the encoder
// fills it with zero slack.
//
// Key Components:
//
//   - BatchWrite: one record's operations plus optional per-record policy as
//     embedded in a multi-record batch request. Size() returns its exact
//     serialized length, Repeatable() detects entries that may reuse the
//     previous entry's policy bytes on the wire.
//
//   - Value / Operation: the minimal value and operation surface the size
//     calculator consumes. Full value encoding lives in the serialization
//     layer above, not here.
//
//   - Buffer: fixed-capacity fill buffer whose position carries the state of
//     a partially completed non-blocking read or write.
//
//   - EncodeProtoHeader / ParseProtoHeader: the fixed-size message header
//     announcing the body length of a frame.
package wire
