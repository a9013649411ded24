// Package chat holds the mini chat log message model and its history rules.
package chat

import (
	"fmt"
	"time"
)

// MaxMessages is the hard cap on persisted chat history. Older messages
// are dropped on every append, not just at capacity.
const MaxMessages = 50

// Message is one chat bubble: the text and a local HH:MM stamp.
type Message struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// New stamps a message with the local clock.
func New(text string, now time.Time) Message {
	return Message{Text: text, Time: Stamp(now)}
}

// Stamp formats a zero-padded local HH:MM timestamp.
func Stamp(now time.Time) string {
	return fmt.Sprintf("%02d:%02d", now.Local().Hour(), now.Local().Minute())
}

// Truncate keeps the most recent MaxMessages entries, oldest dropped first.
// The input slice is not modified.
func Truncate(msgs []Message) []Message {
	if len(msgs) <= MaxMessages {
		return msgs
	}
	return msgs[len(msgs)-MaxMessages:]
}
