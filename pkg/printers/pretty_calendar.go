package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/keepsake/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month grid with memory days highlighted and today
// underlined. hasMemory is consulted per ISO date.
func (pp *PrettyPrint) Month(year int, month time.Month, hasMemory func(date string) bool, selected string) {
	tf := color.New(color.FgWhite, color.Italic)

	title := fmt.Sprintf("%s %d", month.String(), year)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	head := color.New(color.Faint)
	_, _ = head.Println("Su Mo Tu We Th Fr Sa")

	plain := color.New(color.Faint, color.FgWhite)
	marked := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Underline)
	sel := color.New(color.ReverseVideo)

	now := time.Now()
	col := 0
	for _, cell := range calendar.MonthGrid(year, month) {
		if cell.Blank() {
			fmt.Print("   ")
		} else {
			printer := plain
			if hasMemory != nil && hasMemory(cell.Date) {
				printer = marked
			}
			if cell.Date == selected {
				printer = sel
			} else if now.Year() == year && now.Month() == month && now.Day() == cell.Day {
				printer = today
			}
			_, _ = printer.Printf("%2d", cell.Day)
			fmt.Print(" ")
		}
		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
