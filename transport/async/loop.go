package async

import (
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport/async")

// --------------------------------------------------------------------------
// Interface Definitions
// --------------------------------------------------------------------------

// Command is the in-flight request attached to a connection's registration.
// The event loop calls exactly one of these methods per readiness event,
// selected by the registration's current interest. The command drives the
// connection's next non-blocking step and yields back to the loop.
type Command interface {
	// OnConnectable is invoked when the pending non-blocking connect has
	// an outcome. The command calls Conn.FinishConnect to learn it.
	OnConnectable()

	// OnWritable is invoked when the socket can accept more bytes
	OnWritable()

	// OnReadable is invoked when response bytes are available
	OnReadable()
}

// EventLoop is the registration surface a reactor connection drives. The
// connection never touches the loop's polling mechanism beyond these three
// operations; the loop owns the poll threads and the registration table.
//
// The connection assembles the Registration and hands it over with Add, so
// its key handle is in place before the first readiness event can fire.
type EventLoop interface {
	// Add binds an assembled registration to the loop and starts event
	// delivery for its interest
	Add(r *Registration) error

	// Update changes the interest of an existing registration
	Update(r *Registration, interest Interest) error

	// Cancel destroys a registration. Failures are logged, never returned.
	Cancel(r *Registration)
}

// --------------------------------------------------------------------------
// Registration
// --------------------------------------------------------------------------

// Registration binds one connection's socket to the event loop: the current
// interest plus the attached command. The command slot is a typed field, not
// an untyped attachment; attaching replaces, never stacks.
//
// A registration is mutated only from the loop goroutine and the
// connection's current owner, which the contract above keeps disjoint in
// time.
type Registration struct {
	loop     EventLoop
	fd       int
	interest Interest
	cmd      Command
}

// NewRegistration assembles a registration key for the given loop. The key
// starts delivering events once handed to EventLoop.Add.
func NewRegistration(loop EventLoop, fd int, interest Interest, cmd Command) *Registration {
	return &Registration{loop: loop, fd: fd, interest: interest, cmd: cmd}
}

// Fd returns the registered file descriptor.
func (r *Registration) Fd() int {
	return r.fd
}

// Interest returns the current interest.
func (r *Registration) Interest() Interest {
	return r.interest
}

// SetInterest updates the registration's interest with the loop.
func (r *Registration) SetInterest(interest Interest) error {
	if err := r.loop.Update(r, interest); err != nil {
		return err
	}
	r.interest = interest
	return nil
}

// Attach replaces the attached command. Attaching nil detaches.
func (r *Registration) Attach(cmd Command) {
	r.cmd = cmd
}

// Command returns the currently attached command, nil if detached.
func (r *Registration) Command() Command {
	return r.cmd
}

// Cancel destroys the registration with the loop.
func (r *Registration) Cancel() {
	r.loop.Cancel(r)
}
