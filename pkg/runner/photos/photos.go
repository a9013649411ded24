// Package photos contains runners for gallery photo commands.
package photos

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/photo"
	"tableflip.dev/keepsake/pkg/printers"
	"tableflip.dev/keepsake/pkg/prompt"
	"tableflip.dev/keepsake/pkg/store"
)

// List prints the photos visible under the current selection.
type List struct {
	KV        store.KV
	LikedOnly bool
	ShowIndex bool
}

func (n *List) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	s.SetLikedOnly(n.LikedOnly)

	pp := printers.PrettyPrint{ShowIndex: n.ShowIndex}
	title := app.AllFoldersLabel
	if s.SelectedFolder() != app.AllFolders {
		title = s.SelectedFolder()
	}

	visible := s.Visible()
	pp.TitleWithCount(title, len(visible))
	pp.Photos(rowsFor(s, visible))
	return nil
}

func rowsFor(s *app.State, visible []photo.Photo) []printers.PhotoRow {
	rows := make([]printers.PhotoRow, 0, len(visible))
	for i, p := range visible {
		note, _ := s.Note(p)
		rows = append(rows, printers.PhotoRow{
			Index: i,
			Photo: p,
			Liked: s.Liked(p),
			Note:  note,
		})
	}
	return rows
}

// Add encodes each file as a data URL and binds it to the current
// selection. Each file is appended and persisted independently, matching
// the one-photo-per-completed-read behavior of the original uploader.
type Add struct {
	KV    store.KV
	Files []string
}

func (n *Add) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}

	for _, file := range n.Files {
		data, err := EncodeFile(file)
		if err != nil {
			return fmt.Errorf("photos: read %s: %w", file, err)
		}
		p, err := s.AddPhoto(data, filepath.Base(file))
		if err != nil {
			return err
		}
		fmt.Printf("Added %s\n", p.String())
	}
	return nil
}

// EncodeFile reads a file and encodes it as a base64 data URL, the same
// shape the browser FileReader produced.
func EncodeFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// Delete removes one photo by index or derived key after confirmation.
type Delete struct {
	KV      store.KV
	Index   int
	Key     string
	Confirm prompt.Confirmer
}

func (n *Delete) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	if n.Confirm != nil && !n.Confirm("Delete this photo?") {
		return nil
	}
	if n.Key != "" {
		return s.DeletePhotoByKey(n.Key)
	}
	return s.DeletePhotoAt(n.Index)
}

// View prints the full detail of one photo by its visible index.
type View struct {
	KV    store.KV
	Index int
}

func (n *View) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	visible := s.Visible()
	if n.Index < 0 || n.Index >= len(visible) {
		return fmt.Errorf("photos: index %d out of range", n.Index)
	}
	p := visible[n.Index]
	note, _ := s.Note(p)
	pp := printers.PrettyPrint{}
	pp.PhotoDetail(printers.PhotoRow{Photo: p, Liked: s.Liked(p), Note: note})
	return nil
}
