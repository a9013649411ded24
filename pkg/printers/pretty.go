package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/keepsake/pkg/calendar"
	"tableflip.dev/keepsake/pkg/chat"
	"tableflip.dev/keepsake/pkg/photo"
)

type PrettyPrint struct {
	ShowIndex bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// FolderRow is one line of the folder listing.
type FolderRow struct {
	Label    string
	Selected bool
	Cover    string
	Count    int
}

func (pp *PrettyPrint) Folders(rows []FolderRow) {
	sel := color.New(color.Bold, color.FgHiMagenta)
	t := color.New()
	f := color.New(color.Faint)

	for _, row := range rows {
		marker := "  "
		printer := t
		if row.Selected {
			marker = "▸ "
			printer = sel
		}
		_, _ = printer.Printf("%s%s", marker, row.Label)
		_, _ = f.Printf("  %d", row.Count)
		if row.Cover != "" {
			_, _ = f.Printf("  (cover: %s)", row.Cover)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// PhotoRow is one line of the photo listing.
type PhotoRow struct {
	Index int
	Photo photo.Photo
	Liked bool
	Note  string
}

func (pp *PrettyPrint) Photos(rows []PhotoRow) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	heart := color.New(color.FgHiRed)
	note := color.New(color.Faint, color.Italic)

	for _, row := range rows {
		if pp.ShowIndex {
			_, _ = t.Printf("%3d  ", row.Index)
		}
		if row.Liked {
			_, _ = heart.Print("♥ ")
		} else {
			_, _ = t.Print("  ")
		}
		_, _ = t.Print(row.Photo.String())
		if row.Note != "" {
			_, _ = note.Printf("  — %s", row.Note)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// PhotoDetail prints the full view of a single photo.
func (pp *PrettyPrint) PhotoDetail(row PhotoRow) {
	pp.Title(row.Photo.Title())
	t := color.New()
	f := color.New(color.Faint)

	folder := row.Photo.Folder
	if folder == "" {
		folder = "(no folder)"
	}
	_, _ = t.Printf("folder: %s\n", folder)
	_, _ = t.Printf("liked:  %v\n", row.Liked)
	if row.Note != "" {
		_, _ = t.Printf("note:   %s\n", row.Note)
	}
	_, _ = f.Printf("data:   %d bytes encoded\n\n", len(row.Photo.Data))
}

func (pp *PrettyPrint) Chat(msgs []chat.Message) {
	if len(msgs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no messages yet\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("#", "TIME", "MESSAGE")
	for i, msg := range msgs {
		table.AddRow(i, msg.Time, msg.Text)
	}
	fmt.Println(table)
	fmt.Println("")
}

func (pp *PrettyPrint) Memories(entries []calendar.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no calendar notes yet\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("DATE", "MEMORY")
	for _, e := range entries {
		table.AddRow(e.Date, e.Text)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Moods prints the available moods with the active one marked.
func (pp *PrettyPrint) Moods(all []string, active string) {
	sel := color.New(color.Bold, color.FgHiMagenta)
	t := color.New()
	for _, m := range all {
		if m == active {
			_, _ = sel.Printf("▸ %s\n", m)
		} else {
			_, _ = t.Printf("  %s\n", m)
		}
	}
	fmt.Println("")
}

// Tabs prints the tab names with the active one marked.
func (pp *PrettyPrint) Tabs(names []string, active int) {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			parts = append(parts, color.New(color.Bold, color.Underline).Sprintf("[%d] %s", i, name))
		} else {
			parts = append(parts, color.New(color.Faint).Sprintf("[%d] %s", i, name))
		}
	}
	fmt.Println(strings.Join(parts, "  "))
	fmt.Println("")
}
