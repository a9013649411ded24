// Package moods contains runners for the mood theme switcher.
package moods

import (
	"context"
	"fmt"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/mood"
	"tableflip.dev/keepsake/pkg/printers"
	"tableflip.dev/keepsake/pkg/store"
)

// Show prints the available moods with the active one marked.
type Show struct {
	KV store.KV
}

func (n *Show) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		names = append(names, m.String())
	}
	pp := printers.PrettyPrint{}
	pp.Title("Mood")
	pp.Moods(names, s.Mood().String())
	return nil
}

// Set persists a new mood theme.
type Set struct {
	KV   store.KV
	Mood string
}

func (n *Set) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	m, err := mood.Parse(n.Mood)
	if err != nil {
		return err
	}
	if err := s.SetMood(m); err != nil {
		return err
	}
	fmt.Printf("mood set to %s\n", m)
	return nil
}
