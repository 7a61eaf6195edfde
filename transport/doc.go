// Package transport implements the blocking connection discipline of the
// kvwire transport core plus the validity primitives shared with the
// non-blocking discipline in transport/async.
//
// A blocking Conn owns one TCP socket and is used by synchronous command
// execution paths: one connection per in-flight command per thread, all I/O
// blocking the calling goroutine until completion, timeout or error. The
// only way to cancel a blocked call is to close the connection from another
// goroutine, which surfaces as an I/O error to the blocked caller.
//
// Key Components:
//
//   - Conn: blocking socket connection with chunked writes, full-fill reads,
//     idle-based validity and best-effort close.
//
//   - Connection: the small capability set both connection disciplines
//     implement. The two forms deliberately share no other structure.
//
//   - IdleTracker: the idle-window primitive a pool built on top uses to
//     decide reuse versus discard.
//
// This package does not pool connections, retry operations or select server
// nodes - it exposes the primitives those layers are built on.
package transport
