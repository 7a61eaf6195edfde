package async

import (
	"fmt"
	"net"

	"github.com/VictoriaMetrics/metrics"
	"github.com/himanchali/kvwire/common"
	"github.com/himanchali/kvwire/transport"
	"github.com/himanchali/kvwire/wire"
	"golang.org/x/sys/unix"
)

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

var (
	metricConnects      = metrics.NewCounter(`kvwire_connects_total{transport="async"}`)
	metricConnectErrors = metrics.NewCounter(`kvwire_connect_errors_total{transport="async"}`)
	metricBytesWritten  = metrics.NewCounter(`kvwire_bytes_written_total{transport="async"}`)
	metricBytesRead     = metrics.NewCounter(`kvwire_bytes_read_total{transport="async"}`)
	metricWouldBlocks   = metrics.NewCounter(`kvwire_would_block_total{transport="async"}`)
)

// --------------------------------------------------------------------------
// Reactor Connection
// --------------------------------------------------------------------------

// Conn is a non-blocking socket connection integrated with a shared event
// loop. All of its I/O methods perform a single non-blocking attempt and
// return immediately; the loop re-invokes the attached command when the next
// readiness event fires.
//
// A Conn is exclusively owned by at most one attached command at any
// instant, so it uses no locking.
type Conn struct {
	fd        int
	loop      EventLoop
	reg       *Registration
	idle      transport.IdleTracker
	connected bool
	closed    bool
}

// Open creates a non-blocking socket with no-delay enabled and starts a
// non-blocking connect to address. The connect is not complete on return:
// the caller registers a command and waits for the loop's connectable
// callback, then calls FinishConnect.
//
// On any failure after the socket exists, the partially set up connection is
// closed before the error propagates.
func Open(address string, loop EventLoop, maxIdleSeconds int) (*Conn, error) {
	sa, family, err := resolveSockaddr(address)
	if err != nil {
		metricConnectErrors.Inc()
		return nil, common.NewConnectionError("resolve", err)
	}

	fd, err := unix.Socket(family, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		metricConnectErrors.Inc()
		return nil, common.NewConnectionError("socket", err)
	}

	c := &Conn{fd: fd, loop: loop, idle: transport.NewIdleTracker(maxIdleSeconds)}

	if err := unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_NODELAY, 1); err != nil {
		c.Close()
		metricConnectErrors.Inc()
		return nil, common.NewConnectionError("nodelay", err)
	}

	if err := unix.Connect(fd, sa); err != nil && err != unix.EINPROGRESS {
		c.Close()
		metricConnectErrors.Inc()
		return nil, common.NewConnectionError("connect", err)
	}

	c.idle.Touch()
	return c, nil
}

// Register binds the connection to the loop with cmd attached. On the first
// call a registration key is created with connect interest. If a key already
// exists the connection is being reused from a pool: the new command
// replaces the old one and the interest moves straight to write, skipping
// the connect phase.
func (c *Conn) Register(cmd Command) error {
	if c.reg != nil {
		c.reg.Attach(cmd)
		return c.reg.SetInterest(InterestWrite)
	}

	// The key handle is stored before the loop arms it, so readiness
	// callbacks never observe a connection without its registration.
	reg := NewRegistration(c.loop, c.fd, InterestConnect, cmd)
	c.reg = reg
	if err := c.loop.Add(reg); err != nil {
		c.reg = nil
		return err
	}
	return nil
}

// FinishConnect retrieves the outcome of the pending non-blocking connect.
// Called by the command from its connectable callback. On success the
// command moves the connection to the write phase via SetWritable.
func (c *Conn) FinishConnect() error {
	soerr, err := unix.GetsockoptInt(c.fd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		metricConnectErrors.Inc()
		return common.NewConnectionError("connect", err)
	}
	if soerr != 0 {
		metricConnectErrors.Inc()
		return common.NewConnectionError("connect", unix.Errno(soerr))
	}

	c.connected = true
	metricConnects.Inc()
	return nil
}

// Write performs a single non-blocking write attempt with whatever bytes the
// socket accepts. Once the buffer is fully drained the connection moves its
// interest to read and resets the buffer to expect the fixed-size response
// header next. A partial write is a normal outcome: interest stays write and
// the loop will call again on the next writable event.
func (c *Conn) Write(buf *wire.Buffer) error {
	n, err := unix.Write(c.fd, buf.Window())
	if err != nil {
		if err == unix.EAGAIN {
			// Socket buffer full, stay in the write phase.
			metricWouldBlocks.Inc()
			return nil
		}
		return err
	}
	metricBytesWritten.Add(n)
	buf.Advance(n)

	if !buf.HasRemaining() {
		buf.ResetForHeader()
		return c.reg.SetInterest(InterestRead)
	}
	return nil
}

// Read fills buf up to its limit using only non-blocking read attempts.
// It returns (true, nil) once the buffer is fully drained, (false, nil) on
// would-block, and fails with common.ErrUnexpectedEOF when the remote end
// closed the socket mid-response. The fill progress lives in the buffer's
// position, not the connection, so the call is re-entrant across readiness
// events for the same logical read.
func (c *Conn) Read(buf *wire.Buffer) (bool, error) {
	for buf.HasRemaining() {
		n, err := unix.Read(c.fd, buf.Window())
		if err != nil {
			if err == unix.EAGAIN {
				metricWouldBlocks.Inc()
				return false, nil
			}
			if err == unix.EINTR {
				continue
			}
			return false, err
		}
		if n == 0 {
			// Server has shutdown the socket.
			return false, common.ErrUnexpectedEOF
		}
		metricBytesRead.Add(n)
		buf.Advance(n)
	}
	return true, nil
}

// SetWritable moves the interest to write, e.g. after the connect phase
// completed.
func (c *Conn) SetWritable() error {
	return c.reg.SetInterest(InterestWrite)
}

// SetReadable moves the interest to read outside the write-completion path,
// e.g. after parsing a response header to read the body.
func (c *Conn) SetReadable() error {
	return c.reg.SetInterest(InterestRead)
}

// Unregister parks the connection: interest cleared, command detached, the
// registration key kept so a later Register can take the pooled-reuse fast
// path.
func (c *Conn) Unregister() error {
	c.reg.Attach(nil)
	return c.reg.SetInterest(InterestNone)
}

// IsConnected reports transport-level connectivity only, ignoring idle time.
func (c *Conn) IsConnected() bool {
	return c.connected && !c.closed
}

// IsValid reports whether the socket is connected and was used within the
// idle window.
func (c *Conn) IsValid() bool {
	return c.IsConnected() && c.idle.Fresh()
}

// UpdateLastUsed refreshes the idle window after a completed round-trip.
func (c *Conn) UpdateLastUsed() {
	c.idle.Touch()
}

// Close cancels the registration key, if any, and closes the socket. Close
// failures are logged, never returned, and a second Close is a no-op.
func (c *Conn) Close() {
	if c.reg != nil {
		c.reg.Cancel()
		c.reg = nil
	}

	if c.closed {
		return
	}
	c.closed = true
	c.connected = false

	if err := unix.Close(c.fd); err != nil {
		Logger.Debugf("error closing socket: %v", err)
	}
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// resolveSockaddr resolves a host:port address into the sockaddr and socket
// family for the connect call
func resolveSockaddr(address string) (unix.Sockaddr, int, error) {
	addr, err := net.ResolveTCPAddr("tcp", address)
	if err != nil {
		return nil, 0, err
	}

	if ip4 := addr.IP.To4(); ip4 != nil {
		sa := &unix.SockaddrInet4{Port: addr.Port}
		copy(sa.Addr[:], ip4)
		return sa, unix.AF_INET, nil
	}

	ip6 := addr.IP.To16()
	if ip6 == nil {
		return nil, 0, fmt.Errorf("unsupported address: %s", address)
	}
	sa := &unix.SockaddrInet6{Port: addr.Port}
	copy(sa.Addr[:], ip6)
	return sa, unix.AF_INET6, nil
}
