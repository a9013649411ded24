// Package tabs contains runners for the persisted tab selection.
package tabs

import (
	"context"
	"fmt"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/printers"
	"tableflip.dev/keepsake/pkg/store"
)

// Names lists the navigation tabs in index order.
var Names = []string{"home", "voice", "chat", "calendar"}

// Show prints the tabs with the active one marked.
type Show struct {
	KV store.KV
}

func (n *Show) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Tabs(Names, s.Tab())
	return nil
}

// Set persists the active tab index.
type Set struct {
	KV    store.KV
	Index int
}

func (n *Set) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	if err := s.SelectTab(n.Index); err != nil {
		return err
	}
	fmt.Printf("tab set to %s\n", Names[n.Index])
	return nil
}
