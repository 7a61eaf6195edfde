//go:build linux

package async

import (
	"bytes"
	"errors"
	"testing"

	"github.com/himanchali/kvwire/common"
	"github.com/himanchali/kvwire/transport"
	"github.com/himanchali/kvwire/wire"
	"golang.org/x/sys/unix"
)

// --------------------------------------------------------------------------
// Test Helpers
// --------------------------------------------------------------------------

// fakeLoop records registrations and interest updates without any polling
type fakeLoop struct {
	registered []*Registration
	updates    []Interest
	cancelled  int
}

func (l *fakeLoop) Add(r *Registration) error {
	l.registered = append(l.registered, r)
	return nil
}

func (l *fakeLoop) Update(_ *Registration, interest Interest) error {
	l.updates = append(l.updates, interest)
	return nil
}

func (l *fakeLoop) Cancel(_ *Registration) {
	l.cancelled++
}

// lastUpdate returns the most recent interest update, InterestNone if none
func (l *fakeLoop) lastUpdate() Interest {
	if len(l.updates) == 0 {
		return InterestNone
	}
	return l.updates[len(l.updates)-1]
}

// noopCommand satisfies Command for registration tests
type noopCommand struct{}

func (noopCommand) OnConnectable() {}
func (noopCommand) OnWritable()    {}
func (noopCommand) OnReadable()    {}

// newPair creates a connected non-blocking socket pair and wraps one end in
// a registered Conn. The peer fd is returned raw.
func newPair(t *testing.T, loop EventLoop) (*Conn, int) {
	t.Helper()

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("socketpair failed: %v", err)
	}
	t.Cleanup(func() { _ = unix.Close(fds[1]) })

	c := &Conn{fd: fds[0], loop: loop, idle: transport.NewIdleTracker(0), connected: true}
	c.idle.Touch()

	if err := c.Register(noopCommand{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	t.Cleanup(c.Close)
	return c, fds[1]
}

// --------------------------------------------------------------------------
// Registration Tests
// --------------------------------------------------------------------------

// TestRegisterLifecycle tests key creation, pooled-reuse fast path and
// command replacement
func TestRegisterLifecycle(t *testing.T) {
	loop := &fakeLoop{}
	c := &Conn{fd: 42, loop: loop}

	first := noopCommand{}
	if err := c.Register(first); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if len(loop.registered) != 1 {
		t.Fatalf("loop holds %d registrations, want 1", len(loop.registered))
	}
	reg := loop.registered[0]
	if reg.Interest() != InterestConnect {
		t.Errorf("fresh registration interest = %v, want connect", reg.Interest())
	}
	if reg.Command() == nil {
		t.Error("fresh registration must carry the command")
	}

	// Re-register for pooled reuse: same key, interest straight to write.
	second := &struct{ noopCommand }{}
	if err := c.Register(second); err != nil {
		t.Fatalf("second Register failed: %v", err)
	}
	if len(loop.registered) != 1 {
		t.Errorf("re-register created a second key: %d registrations", len(loop.registered))
	}
	if loop.lastUpdate() != InterestWrite {
		t.Errorf("re-register interest = %v, want write", loop.lastUpdate())
	}
	if reg.Command() != Command(second) {
		t.Error("re-register must replace the attached command")
	}
}

// TestUnregisterParksKey tests that unregister clears interest and detaches
// the command but keeps the key
func TestUnregisterParksKey(t *testing.T) {
	loop := &fakeLoop{}
	c := &Conn{fd: 42, loop: loop}

	if err := c.Register(noopCommand{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := c.Unregister(); err != nil {
		t.Fatalf("Unregister failed: %v", err)
	}

	reg := loop.registered[0]
	if reg.Command() != nil {
		t.Error("Unregister must detach the command")
	}
	if loop.lastUpdate() != InterestNone {
		t.Errorf("Unregister interest = %v, want none", loop.lastUpdate())
	}

	// The kept key lets the next Register take the fast path.
	if err := c.Register(noopCommand{}); err != nil {
		t.Fatalf("Register after Unregister failed: %v", err)
	}
	if len(loop.registered) != 1 {
		t.Errorf("Register after Unregister created a new key")
	}
	if loop.lastUpdate() != InterestWrite {
		t.Errorf("Register after Unregister interest = %v, want write", loop.lastUpdate())
	}
}

// --------------------------------------------------------------------------
// Non-Blocking I/O Tests
// --------------------------------------------------------------------------

// TestWriteDrainTransitionsToRead tests that a fully drained write moves the
// interest to read and rewinds the buffer for the response header
func TestWriteDrainTransitionsToRead(t *testing.T) {
	loop := &fakeLoop{}
	c, peer := newPair(t, loop)

	payload := []byte("drain me please!")
	buf := wire.NewBufferFrom(payload)

	if err := c.Write(buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if loop.lastUpdate() != InterestRead {
		t.Errorf("interest after drain = %v, want read", loop.lastUpdate())
	}
	if buf.Position() != 0 || buf.Limit() != wire.HeaderSize {
		t.Errorf("buffer not reset for header: pos %d limit %d", buf.Position(), buf.Limit())
	}

	got := make([]byte, len(payload))
	n, err := unix.Read(peer, got)
	if err != nil || n != len(payload) {
		t.Fatalf("peer read %d bytes (err %v), want %d", n, err, len(payload))
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("peer observed %q, want %q", got, payload)
	}
}

// TestWritePartialKeepsWriteInterest tests that a partial write is a normal
// outcome leaving the connection in the write phase
func TestWritePartialKeepsWriteInterest(t *testing.T) {
	loop := &fakeLoop{}
	c, _ := newPair(t, loop)

	// Shrink the send buffer so a large write cannot complete while the
	// peer is not reading.
	if err := unix.SetsockoptInt(c.fd, unix.SOL_SOCKET, unix.SO_SNDBUF, 4096); err != nil {
		t.Fatalf("setsockopt failed: %v", err)
	}

	buf := wire.NewBufferFrom(make([]byte, 1<<20))
	if err := c.Write(buf); err != nil {
		t.Fatalf("first write attempt failed: %v", err)
	}
	if !buf.HasRemaining() {
		t.Skip("kernel accepted the full megabyte, cannot observe a partial write")
	}

	remaining := buf.Remaining()

	// The next attempt either makes progress or would-blocks, neither is
	// an error and neither may leave the write phase.
	if err := c.Write(buf); err != nil {
		t.Fatalf("second write attempt failed: %v", err)
	}
	if buf.Remaining() > remaining {
		t.Error("write attempt lost progress")
	}
	for _, update := range loop.updates {
		if update == InterestRead {
			t.Error("partial write must not transition to the read phase")
		}
	}
}

// TestReadAcrossWouldBlock tests re-entrant reads: bytes arriving over
// multiple readiness events are accumulated without loss or duplication
func TestReadAcrossWouldBlock(t *testing.T) {
	loop := &fakeLoop{}
	c, peer := newPair(t, loop)

	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i)
	}

	buf := wire.NewBuffer(len(payload))

	// First slice of the response arrives.
	if _, err := unix.Write(peer, payload[:40]); err != nil {
		t.Fatalf("peer write failed: %v", err)
	}
	done, err := c.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if done {
		t.Fatal("Read reported complete after a partial fill")
	}
	if buf.Position() != 40 {
		t.Errorf("position = %d after first event, want 40", buf.Position())
	}

	// Rest of the response arrives, next readiness event fires.
	if _, err := unix.Write(peer, payload[40:]); err != nil {
		t.Fatalf("peer write failed: %v", err)
	}
	done, err = c.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !done {
		t.Fatal("Read not complete after all bytes arrived")
	}
	if !bytes.Equal(buf.Filled(), payload) {
		t.Error("accumulated bytes differ from the sent payload")
	}
}

// TestReadEOF tests that a remote shutdown mid-response surfaces as an
// unexpected end of stream
func TestReadEOF(t *testing.T) {
	loop := &fakeLoop{}
	c, peer := newPair(t, loop)

	if _, err := unix.Write(peer, []byte("partial")); err != nil {
		t.Fatalf("peer write failed: %v", err)
	}
	if err := unix.Close(peer); err != nil {
		t.Fatalf("peer close failed: %v", err)
	}

	buf := wire.NewBuffer(64)
	_, err := c.Read(buf)
	if !errors.Is(err, common.ErrUnexpectedEOF) {
		t.Errorf("Read = %v, want ErrUnexpectedEOF", err)
	}
}

// TestCloseCancelsRegistration tests close semantics: key cancelled, second
// close a no-op, validity gone
func TestCloseCancelsRegistration(t *testing.T) {
	loop := &fakeLoop{}
	c, _ := newPair(t, loop)

	if !c.IsValid() {
		t.Fatal("connection must be valid before close")
	}

	c.Close()
	c.Close() // Second close is a no-op, not a panic.

	if loop.cancelled != 1 {
		t.Errorf("registration cancelled %d times, want 1", loop.cancelled)
	}
	if c.IsConnected() || c.IsValid() {
		t.Error("closed connection must not report connected or valid")
	}
}
