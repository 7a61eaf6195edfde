// Package async implements the non-blocking connection discipline of the
// kvwire transport core: a reactor connection driven by a single shared
// event loop instead of a blocking goroutine per command.
//
// A Conn owns one non-blocking socket and performs only non-blocking I/O
// attempts, returning control immediately. The shared event loop polls
// readiness across many connections and calls back into the attached
// command when the connection's socket becomes connectable, writable or
// readable. For one connection readiness events are dispatched strictly in
// arrival order, so the write-then-read phase transitions of a command are
// never reordered; there is no cross-connection ordering guarantee.
//
// State machine per connection:
//
//	UNREGISTERED -> CONNECT_PENDING -> WRITABLE -> READABLE
//	    -> (WRITABLE|READABLE, on reuse) -> UNREGISTERED | CLOSED
//
// Transitions are driven exclusively by readiness callbacks; a connection
// never polls or blocks. A connection is exclusively owned by at most one
// attached command at a time - attaching a new command replaces any previous
// one, it never stacks. Cancellation and timeouts are the command layer's
// job: it detects elapsed deadlines itself and force-closes the connection,
// which surfaces as an I/O error on the next readiness callback.
//
// "Would block" on read or write is not an error here. It is a first-class
// incomplete-result outcome the caller handles by yielding back to the loop.
package async
