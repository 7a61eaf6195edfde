package wire

import (
	"encoding/binary"
	"fmt"
)

// --------------------------------------------------------------------------
// Message Header
// --------------------------------------------------------------------------

// Every message exchanged over a connection starts with a fixed 8 byte
// header announcing the body length:
//   - 1 byte:  protocol version
//   - 1 byte:  message type
//   - 6 bytes: body length (unsigned, big endian)
//
// A response reader therefore always reads exactly HeaderSize bytes first,
// parses the body length, and then reads exactly that many body bytes.
const (
	// HeaderSize is the size of the message header in bytes
	HeaderSize = 8

	// ProtoVersion is the protocol version this client speaks
	ProtoVersion = 2

	// MsgTypeMessage is the message type of regular request/response frames
	MsgTypeMessage = 3

	// maxBodySize is the largest body length the 6 byte field can carry
	maxBodySize = 1<<48 - 1
)

// EncodeProtoHeader writes the message header for a body of the given length
// into the first HeaderSize bytes of buf.
func EncodeProtoHeader(buf []byte, msgType byte, bodyLength int64) error {
	if len(buf) < HeaderSize {
		return fmt.Errorf("header buffer too short: %d bytes", len(buf))
	}
	if bodyLength < 0 || bodyLength > maxBodySize {
		return fmt.Errorf("body length out of range: %d", bodyLength)
	}

	packed := uint64(ProtoVersion)<<56 | uint64(msgType)<<48 | uint64(bodyLength)
	binary.BigEndian.PutUint64(buf[:HeaderSize], packed)
	return nil
}

// ParseProtoHeader parses a message header and returns the message type and
// the body length that follows it.
func ParseProtoHeader(buf []byte) (msgType byte, bodyLength int64, err error) {
	if len(buf) < HeaderSize {
		return 0, 0, fmt.Errorf("header buffer too short: %d bytes", len(buf))
	}

	packed := binary.BigEndian.Uint64(buf[:HeaderSize])

	version := byte(packed >> 56)
	if version != ProtoVersion {
		return 0, 0, fmt.Errorf("unsupported protocol version: %d", version)
	}

	msgType = byte(packed >> 48)
	bodyLength = int64(packed & maxBodySize)
	return msgType, bodyLength, nil
}
