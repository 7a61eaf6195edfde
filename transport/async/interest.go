package async

// --------------------------------------------------------------------------
// Interest Sets
// --------------------------------------------------------------------------

// Interest is the readiness condition a registered connection currently
// wants notified about. A connection is interested in at most one condition
// at a time; its I/O phases are strictly sequential.
type Interest uint8

const (
	// InterestNone parks the registration without destroying it, e.g.
	// while the connection sits in an idle pool
	InterestNone Interest = iota

	// InterestConnect waits for a pending non-blocking connect to finish
	InterestConnect

	// InterestWrite waits for the socket to accept more request bytes
	InterestWrite

	// InterestRead waits for response bytes to arrive
	InterestRead
)

// String returns the string representation of an Interest.
func (i Interest) String() string {
	switch i {
	case InterestNone:
		return "none"
	case InterestConnect:
		return "connect"
	case InterestWrite:
		return "write"
	case InterestRead:
		return "read"
	default:
		return "unknown"
	}
}
