//go:build linux

package async

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sys/unix"
)

// --------------------------------------------------------------------------
// Epoll Event Loop
// --------------------------------------------------------------------------

const (
	// epollWaitMillis bounds one poll so Stop is observed promptly
	epollWaitMillis = 100

	// maxEventsPerPoll is the batch size of one epoll_wait call
	maxEventsPerPoll = 128
)

// Loop is an epoll backed EventLoop. One goroutine runs the poll loop and
// dispatches readiness callbacks; because it is a single goroutine, events
// for one registration are always dispatched in arrival order.
//
// The fd -> registration table is the only shared structure and uses a
// concurrent map, since Add and Cancel may be called from outside the
// loop goroutine.
type Loop struct {
	epfd     int
	regs     *xsync.MapOf[int32, *Registration]
	stopping atomic.Bool
}

// NewLoop creates a new epoll instance.
func NewLoop() (*Loop, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &Loop{
		epfd: epfd,
		regs: xsync.NewMapOf[int32, *Registration](),
	}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see EventLoop)
// --------------------------------------------------------------------------

func (l *Loop) Add(r *Registration) error {
	l.regs.Store(int32(r.Fd()), r)

	ev := unix.EpollEvent{Events: epollEvents(r.Interest()), Fd: int32(r.Fd())}
	if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_ADD, r.Fd(), &ev); err != nil {
		l.regs.Delete(int32(r.Fd()))
		return err
	}
	return nil
}

func (l *Loop) Update(r *Registration, interest Interest) error {
	ev := unix.EpollEvent{Events: epollEvents(interest), Fd: int32(r.Fd())}
	return unix.EpollCtl(l.epfd, unix.EPOLL_CTL_MOD, r.Fd(), &ev)
}

func (l *Loop) Cancel(r *Registration) {
	l.regs.Delete(int32(r.Fd()))

	if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_DEL, r.Fd(), nil); err != nil {
		Logger.Debugf("error removing fd %d from epoll: %v", r.Fd(), err)
	}
}

// --------------------------------------------------------------------------
// Poll Loop
// --------------------------------------------------------------------------

// Run polls for readiness events and dispatches them until Stop is called.
// It is meant to run on its own goroutine.
func (l *Loop) Run() error {
	events := make([]unix.EpollEvent, maxEventsPerPoll)

	for !l.stopping.Load() {
		n, err := unix.EpollWait(l.epfd, events, epollWaitMillis)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}

		for i := 0; i < n; i++ {
			l.dispatch(&events[i])
		}
	}
	return nil
}

// dispatch routes one readiness event to the attached command based on the
// registration's current interest
func (l *Loop) dispatch(ev *unix.EpollEvent) {
	reg, ok := l.regs.Load(ev.Fd)
	if !ok {
		// Cancelled between poll and dispatch.
		return
	}

	cmd := reg.Command()
	if cmd == nil {
		// Parked registration, nothing to drive.
		return
	}

	switch reg.Interest() {
	case InterestConnect:
		cmd.OnConnectable()
	case InterestWrite:
		cmd.OnWritable()
	case InterestRead:
		cmd.OnReadable()
	}
}

// Stop ends the poll loop after the current wait completes.
func (l *Loop) Stop() {
	l.stopping.Store(true)
}

// Close stops the loop and releases the epoll instance.
func (l *Loop) Close() {
	l.Stop()
	if err := unix.Close(l.epfd); err != nil {
		Logger.Debugf("error closing epoll instance: %v", err)
	}
}

// epollEvents maps an interest to the epoll event mask. Connect completion
// is signalled as writability; errors surface as EPOLLERR/EPOLLHUP which
// epoll always reports, so they need no explicit subscription.
func epollEvents(interest Interest) uint32 {
	switch interest {
	case InterestConnect, InterestWrite:
		return unix.EPOLLOUT
	case InterestRead:
		return unix.EPOLLIN
	default:
		return 0
	}
}
