// Package folders contains runners for folder management commands.
package folders

import (
	"context"
	"fmt"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/printers"
	"tableflip.dev/keepsake/pkg/prompt"
	"tableflip.dev/keepsake/pkg/store"
)

// List prints every folder with the sentinel first.
type List struct {
	KV store.KV
}

func (n *List) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Folders")

	photos := s.Photos()
	rows := make([]printers.FolderRow, 0, len(s.Folders()))
	for _, name := range s.Folders() {
		row := printers.FolderRow{
			Label:    name,
			Selected: name == s.SelectedFolder(),
		}
		if name == app.AllFolders {
			row.Label = app.AllFoldersLabel
			row.Count = len(photos)
		} else {
			for _, p := range photos {
				if p.Folder == name {
					row.Count++
				}
			}
			if cover, ok := s.CoverPhoto(name); ok {
				row.Cover = cover.Title()
			}
		}
		rows = append(rows, row)
	}
	pp.Folders(rows)
	return nil
}

// Add creates a new folder.
type Add struct {
	KV   store.KV
	Name string
}

func (n *Add) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	if err := s.CreateFolder(n.Name); err != nil {
		return err
	}
	fmt.Printf("Created folder %q\n", n.Name)
	return nil
}

// Delete removes a folder and all of its photos after confirmation.
type Delete struct {
	KV      store.KV
	Name    string
	Confirm prompt.Confirmer
}

func (n *Delete) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	if n.Confirm != nil && !n.Confirm(fmt.Sprintf("Delete folder %q and all its photos?", n.Name)) {
		return nil
	}
	if err := s.DeleteFolder(n.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted folder %q\n", n.Name)
	return nil
}

// Select persists the active folder selection.
type Select struct {
	KV   store.KV
	Name string
	All  bool
}

func (n *Select) Do(ctx context.Context) error {
	s, err := app.Load(n.KV)
	if err != nil {
		return err
	}
	name := n.Name
	if n.All {
		name = app.AllFolders
	}
	if err := s.SelectFolder(name); err != nil {
		return err
	}
	if name == app.AllFolders {
		fmt.Printf("Selected %s\n", app.AllFoldersLabel)
	} else {
		fmt.Printf("Selected folder %q\n", name)
	}
	return nil
}
