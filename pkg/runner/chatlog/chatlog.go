// Package chatlog contains runners for the mini chat log commands.
package chatlog

import (
	"context"
	"fmt"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/printers"
	"tableflip.dev/keepsake/pkg/prompt"
	"tableflip.dev/keepsake/pkg/store"
)

// List prints the chat history in chronological order.
type List struct {
	KV store.KV
}

func (n *List) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Chat")
	pp.Chat(s.Messages())
	return nil
}

// Say appends a message stamped with the current local time.
type Say struct {
	KV   store.KV
	Text string
}

func (n *Say) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	msg, err := s.AppendMessage(n.Text)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s\n", msg.Time, msg.Text)
	return nil
}

// Delete removes one message by position after confirmation.
type Delete struct {
	KV      store.KV
	Index   int
	Confirm prompt.Confirmer
}

func (n *Delete) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	if n.Confirm != nil && !n.Confirm("Delete this message?") {
		return nil
	}
	return s.DeleteMessage(n.Index)
}
