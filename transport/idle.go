package transport

import (
	"time"

	"github.com/himanchali/kvwire/common"
)

// --------------------------------------------------------------------------
// Idle Tracking
// --------------------------------------------------------------------------

// IdleTracker tracks when a connection was last used and whether it is still
// within its configured idle window. Both connection forms embed one.
//
// The tracker is single-owner like the connections themselves and uses no
// locking.
type IdleTracker struct {
	maxIdle  time.Duration
	lastUsed time.Time
}

// NewIdleTracker creates a tracker with the given idle window in seconds.
// Values <= 0 select the default of common.DefaultMaxIdleSeconds. The window
// starts at the first Touch.
func NewIdleTracker(maxIdleSeconds int) IdleTracker {
	if maxIdleSeconds <= 0 {
		maxIdleSeconds = common.DefaultMaxIdleSeconds
	}
	return IdleTracker{
		maxIdle: time.Duration(maxIdleSeconds) * time.Second,
	}
}

// Touch refreshes the last-used timestamp.
func (t *IdleTracker) Touch() {
	t.lastUsed = time.Now()
}

// Fresh reports whether the last use lies within the idle window.
func (t *IdleTracker) Fresh() bool {
	return time.Since(t.lastUsed) <= t.maxIdle
}
