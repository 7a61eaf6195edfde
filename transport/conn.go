package transport

import (
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/himanchali/kvwire/common"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport")

const (
	// writeChunkSize is the largest piece handed to a single socket write.
	// Very large single writes incur extra allocation overhead in some
	// socket implementations at the native boundary.
	writeChunkSize = 8192
)

// --------------------------------------------------------------------------
// Blocking Connection
// --------------------------------------------------------------------------

// Conn is a blocking socket connection. It is exclusively owned by at most
// one command at a time and uses no locking.
type Conn struct {
	sock    *net.TCPConn
	timeout time.Duration // per-operation read/write deadline, 0 = none
	idle    IdleTracker
	closed  atomic.Bool
}

// Dial opens a TCP connection to address with no-delay enabled.
//
// If timeout <= 0 the connect attempt itself is still bounded by
// common.DefaultConnectTimeoutMillis: a caller requesting "no timeout" is
// not allowed to block indefinitely on connect, retry logic above this
// layer is expected to re-attempt. A positive timeout additionally becomes
// the read/write deadline for subsequent operations.
//
// maxIdleSeconds <= 0 selects the default idle window of
// common.DefaultMaxIdleSeconds.
func Dial(address string, timeout time.Duration, maxIdleSeconds int) (*Conn, error) {
	connectTimeout := timeout
	if connectTimeout <= 0 {
		connectTimeout = common.DefaultConnectTimeoutMillis * time.Millisecond
	}

	raw, err := net.DialTimeout("tcp", address, connectTimeout)
	if err != nil {
		metricConnectErrors.Inc()
		return nil, common.NewConnectionError("dial", err)
	}

	sock := raw.(*net.TCPConn)
	if err := sock.SetNoDelay(true); err != nil {
		_ = sock.Close()
		metricConnectErrors.Inc()
		return nil, common.NewConnectionError("nodelay", err)
	}

	c := &Conn{sock: sock, idle: NewIdleTracker(maxIdleSeconds)}
	if timeout > 0 {
		c.timeout = timeout
	}
	c.idle.Touch()
	metricConnects.Inc()
	return c, nil
}

// DialConfig opens a connection to the configured endpoint and applies the
// socket tuning options from config.
func DialConfig(config common.ClientConfig) (*Conn, error) {
	c, err := Dial(
		config.Endpoint,
		time.Duration(config.TimeoutMillis)*time.Millisecond,
		config.MaxIdleSeconds,
	)
	if err != nil {
		return nil, err
	}

	if err := c.applySocketConf(config); err != nil {
		c.Close()
		metricConnectErrors.Inc()
		return nil, common.NewConnectionError("socket options", err)
	}
	return c, nil
}

// applySocketConf applies buffer and keep-alive settings from the config
func (c *Conn) applySocketConf(config common.ClientConfig) error {
	if config.SocketConf.WriteBufferSize > 0 {
		if err := c.sock.SetWriteBuffer(config.SocketConf.WriteBufferSize); err != nil {
			return err
		}
	}

	if config.SocketConf.ReadBufferSize > 0 {
		if err := c.sock.SetReadBuffer(config.SocketConf.ReadBufferSize); err != nil {
			return err
		}
	}

	if config.TCPConf.TCPKeepAliveSec > 0 {
		if err := c.sock.SetKeepAlive(true); err != nil {
			return err
		}
		period := time.Duration(config.TCPConf.TCPKeepAliveSec) * time.Second
		if err := c.sock.SetKeepAlivePeriod(period); err != nil {
			return err
		}
	}

	return nil
}

// Write writes all of buf to the socket, chunked into pieces of at most
// 8 KiB per underlying write call. It blocks until every byte is written or
// the transport fails; transport errors propagate as-is.
func (c *Conn) Write(buf []byte) error {
	if err := c.setDeadline(); err != nil {
		return err
	}

	for pos := 0; pos < len(buf); {
		end := pos + writeChunkSize
		if end > len(buf) {
			end = len(buf)
		}

		n, err := c.sock.Write(buf[pos:end])
		metricBytesWritten.Add(n)
		if err != nil {
			return err
		}
		pos += n
	}
	return nil
}

// ReadFully reads from the socket until buf is completely filled. Callers
// always get either exactly len(buf) bytes or an error; an end-of-stream
// before that fails with common.ErrUnexpectedEOF.
func (c *Conn) ReadFully(buf []byte) error {
	if err := c.setDeadline(); err != nil {
		return err
	}

	for pos := 0; pos < len(buf); {
		n, err := c.sock.Read(buf[pos:])
		metricBytesRead.Add(n)
		pos += n

		if pos >= len(buf) {
			break
		}
		if err != nil {
			if err == io.EOF {
				return common.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// SetTimeout adjusts the read/write deadline for subsequent operations on
// this connection. A zero duration removes the deadline.
func (c *Conn) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// setDeadline arms the socket deadline for the next blocking operation
func (c *Conn) setDeadline() error {
	if c.timeout > 0 {
		return c.sock.SetDeadline(time.Now().Add(c.timeout))
	}
	return c.sock.SetDeadline(time.Time{})
}

// IsConnected reports transport-level connectivity only, ignoring idle time.
func (c *Conn) IsConnected() bool {
	return !c.closed.Load()
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

// Close shuts down both socket directions and releases the socket. Each step
// is attempted independently so a failure in one does not prevent the
// others; failures are only logged at debug level. Close never fails and is
// safe to call more than once.
func (c *Conn) Close() {
	c.closed.Store(true)

	if err := c.sock.CloseRead(); err != nil {
		Logger.Debugf("error closing socket read side: %v", err)
	}
	if err := c.sock.CloseWrite(); err != nil {
		Logger.Debugf("error closing socket write side: %v", err)
	}
	if err := c.sock.Close(); err != nil {
		Logger.Debugf("error closing socket: %v", err)
	}
}
