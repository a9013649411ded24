// Package send contains the runner that delivers a love note.
package send

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/keepsake/pkg/sendnote"
)

// Send resolves the recipient alias and delivers the note once. The
// outcome message reflects the actual transport result: success is
// reported only on confirmed success, failure only on confirmed failure.
type Send struct {
	Transport sendnote.Transport
	Config    sendnote.Config

	To        string
	Message   string
	FromName  string
	FromEmail string
}

func (n *Send) Do(ctx context.Context) error {
	if n.Transport == nil {
		return errors.New("send: no transport configured")
	}
	addr, err := n.Config.Resolve(n.To)
	if err != nil {
		return err
	}

	err = n.Transport.Send(ctx, sendnote.Note{
		To:        addr,
		Message:   n.Message,
		FromName:  n.FromName,
		FromEmail: n.FromEmail,
	})
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	fmt.Println("Sent with love!")
	return nil
}
