package gesture

import (
	"testing"
	"time"
)

func TestFireAfterThreshold(t *testing.T) {
	start := time.Now()
	lp := New()
	lp.Press(start)

	if lp.Fire(start.Add(300 * time.Millisecond)) {
		t.Fatalf("fired before the threshold")
	}
	if !lp.Fire(start.Add(LongPressThreshold)) {
		t.Fatalf("did not fire at the threshold")
	}
	if lp.Fire(start.Add(2 * LongPressThreshold)) {
		t.Fatalf("fired twice for one press")
	}
}

func TestReleaseCancels(t *testing.T) {
	start := time.Now()
	lp := New()
	lp.Press(start)
	lp.Release()

	if lp.Fire(start.Add(time.Second)) {
		t.Fatalf("fired after release")
	}
}

func TestMoveCancels(t *testing.T) {
	start := time.Now()
	lp := New()
	lp.Press(start)
	lp.Cancel()

	if lp.Pressed() {
		t.Fatalf("still pressed after cancel")
	}
	if lp.Fire(start.Add(time.Second)) {
		t.Fatalf("fired after cancel")
	}
}

func TestRepress(t *testing.T) {
	start := time.Now()
	lp := NewWithThreshold(100 * time.Millisecond)
	lp.Press(start)
	if !lp.Fire(start.Add(150 * time.Millisecond)) {
		t.Fatalf("first press did not fire")
	}
	lp.Release()
	lp.Press(start.Add(time.Second))
	if !lp.Fire(start.Add(time.Second + 150*time.Millisecond)) {
		t.Fatalf("second press did not fire")
	}
}
