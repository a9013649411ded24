package chat

import (
	"fmt"
	"testing"
	"time"
)

func TestStampZeroPadded(t *testing.T) {
	now := time.Date(2024, 3, 1, 7, 5, 0, 0, time.Local)
	if got := Stamp(now); got != "07:05" {
		t.Fatalf("Stamp() = %q, want %q", got, "07:05")
	}
}

func TestTruncateUnderCap(t *testing.T) {
	msgs := []Message{{Text: "a"}, {Text: "b"}}
	if got := Truncate(msgs); len(got) != 2 {
		t.Fatalf("Truncate() dropped messages under the cap")
	}
}

func TestTruncateDropsOldest(t *testing.T) {
	msgs := make([]Message, 0, MaxMessages+1)
	for i := 0; i <= MaxMessages; i++ {
		msgs = append(msgs, Message{Text: fmt.Sprintf("m%d", i)})
	}
	got := Truncate(msgs)
	if len(got) != MaxMessages {
		t.Fatalf("Truncate() length = %d, want %d", len(got), MaxMessages)
	}
	if got[0].Text != "m1" {
		t.Fatalf("Truncate() kept the oldest message, first = %q", got[0].Text)
	}
	if got[len(got)-1].Text != fmt.Sprintf("m%d", MaxMessages) {
		t.Fatalf("Truncate() dropped the newest message")
	}
}
