// Package mood defines the persisted theme switcher values.
package mood

import (
	"fmt"
	"strings"
)

// Mood identifies the active visual theme.
type Mood string

const (
	Love  Mood = "love"
	Night Mood = "night"
	Sunny Mood = "sunny"
)

// Default is the mood applied when nothing is persisted.
const Default = Love

// All returns the supported moods in display order.
func All() []Mood {
	return []Mood{Love, Night, Sunny}
}

// Parse converts a string to a Mood or returns an error for unknown values.
func Parse(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return Default, nil
	}
	for _, candidate := range All() {
		if candidate == m {
			return candidate, nil
		}
	}
	return Default, fmt.Errorf("mood: unknown mood %q", raw)
}

func (m Mood) String() string {
	return string(m)
}
