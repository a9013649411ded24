// Package note contains the runner that edits a photo's note.
package note

import (
	"context"
	"fmt"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/store"
)

// Set trims and stores the note for the photo at the visible index. Empty
// text removes the note.
type Set struct {
	KV    store.KV
	Index int
	Text  string
}

func (n *Set) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	visible := s.Visible()
	if n.Index < 0 || n.Index >= len(visible) {
		return fmt.Errorf("note: index %d out of range", n.Index)
	}
	p := visible[n.Index]
	if err := s.SetNote(p, n.Text); err != nil {
		return err
	}
	if text, ok := s.Note(p); ok {
		fmt.Printf("note for %s: %s\n", p.Title(), text)
	} else {
		fmt.Printf("cleared note for %s\n", p.Title())
	}
	return nil
}
