package transport

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Connection is the capability set shared by the blocking and the
// non-blocking connection forms. Pooling logic built on top of this core
// only needs these four operations; everything else is discipline specific
// and the two concrete types are deliberately independent.
type Connection interface {
	// IsConnected reports transport-level connectivity only, ignoring
	// idle time
	IsConnected() bool

	// IsValid reports whether the connection is connected AND was used
	// within its idle window. Used to decide reuse vs. discard.
	IsValid() bool

	// UpdateLastUsed refreshes the idle window. Called by the owning
	// command exactly once after a successful request/response cycle,
	// never during one.
	UpdateLastUsed()

	// Close releases the connection. Closed connections are terminal and
	// Close never signals failure to its caller.
	Close()
}
