// Package gesture implements the press-and-hold recognizer used for
// deleting chat messages.
package gesture

import "time"

// LongPressThreshold is how long a press must be held before it fires.
const LongPressThreshold = 600 * time.Millisecond

// LongPress tracks a single press-and-hold interaction. A press that is
// held for at least the threshold fires exactly once; releasing or moving
// before the threshold cancels it.
type LongPress struct {
	threshold time.Duration
	pressedAt time.Time
	pressed   bool
	fired     bool
}

// New returns a recognizer with the default threshold.
func New() *LongPress {
	return NewWithThreshold(LongPressThreshold)
}

// NewWithThreshold returns a recognizer that fires after d.
func NewWithThreshold(d time.Duration) *LongPress {
	return &LongPress{threshold: d}
}

// Press begins tracking a hold.
func (l *LongPress) Press(now time.Time) {
	l.pressed = true
	l.fired = false
	l.pressedAt = now
}

// Cancel aborts the hold, e.g. when the pointer moves.
func (l *LongPress) Cancel() {
	l.pressed = false
	l.fired = false
}

// Release ends the hold without firing.
func (l *LongPress) Release() {
	l.Cancel()
}

// Pressed reports whether a hold is in progress.
func (l *LongPress) Pressed() bool {
	return l.pressed
}

// Fire reports whether the hold has lasted at least the threshold. It
// returns true at most once per press.
func (l *LongPress) Fire(now time.Time) bool {
	if !l.pressed || l.fired {
		return false
	}
	if now.Sub(l.pressedAt) < l.threshold {
		return false
	}
	l.fired = true
	return true
}
