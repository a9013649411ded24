// Package like contains the runner that toggles like state on a photo.
package like

import (
	"context"
	"fmt"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/store"
)

// Toggle flips like membership for the photo at the visible index.
type Toggle struct {
	KV    store.KV
	Index int
}

func (n *Toggle) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	visible := s.Visible()
	if n.Index < 0 || n.Index >= len(visible) {
		return fmt.Errorf("like: index %d out of range", n.Index)
	}
	p := visible[n.Index]
	if err := s.ToggleLike(p); err != nil {
		return err
	}
	if s.Liked(p) {
		fmt.Printf("♥ %s\n", p.Title())
	} else {
		fmt.Printf("unliked %s\n", p.Title())
	}
	return nil
}
