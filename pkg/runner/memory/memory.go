// Package memory contains runners for the calendar memory commands.
package memory

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/calendar"
	"tableflip.dev/keepsake/pkg/printers"
	"tableflip.dev/keepsake/pkg/prompt"
	"tableflip.dev/keepsake/pkg/store"
)

// Show prints the month grid around the focused date (or the current
// month) plus the projected memory entries.
type Show struct {
	KV   store.KV
	Date string
}

func (n *Show) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}

	year, month := time.Now().Year(), time.Now().Month()
	if n.Date != "" {
		t, err := calendar.ParseISO(n.Date)
		if err != nil {
			return fmt.Errorf("memory: invalid date %q: %w", n.Date, err)
		}
		year, month = t.Year(), t.Month()
	}

	pp := printers.PrettyPrint{}
	pp.Month(year, month, s.HasMemory, n.Date)
	pp.Memories(s.MemoryEntries(n.Date))
	return nil
}

// Set trims and stores the memory for an ISO date; empty text removes it.
type Set struct {
	KV   store.KV
	Date string
	Text string
}

func (n *Set) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	if err := s.SetMemory(n.Date, n.Text); err != nil {
		return err
	}
	if text, ok := s.Memory(n.Date); ok {
		fmt.Printf("%s: %s\n", n.Date, text)
	} else {
		fmt.Printf("cleared memory for %s\n", n.Date)
	}
	return nil
}

// Delete removes the memory for an ISO date after confirmation.
type Delete struct {
	KV      store.KV
	Date    string
	Confirm prompt.Confirmer
}

func (n *Delete) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	if n.Confirm != nil && !n.Confirm(fmt.Sprintf("Delete the memory for %s?", n.Date)) {
		return nil
	}
	return s.DeleteMemory(n.Date)
}
