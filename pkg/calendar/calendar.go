// Package calendar provides pure month-grid and memory-list computations.
package calendar

import (
	"sort"
	"time"
)

const LayoutISO = "2006-01-02"

// Cell is one slot in a month grid. Leading blank cells pad the first week
// so day 1 lands on its weekday column; blanks have Day 0 and no Date.
type Cell struct {
	Day  int
	Date string
}

// Blank reports whether the cell is a leading pad cell.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// DaysIn returns the day count of the month via day-32 overflow arithmetic:
// day 32 of any month normalizes to (32 - daysInMonth) of the next one.
func DaysIn(year int, month time.Month) int {
	overflow := time.Date(year, month, 32, 0, 0, 0, 0, time.Local).Day()
	return 32 - overflow
}

// StartWeekday returns the weekday index of the 1st, Sunday = 0.
func StartWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// MonthGrid returns one cell per date 1..count, preceded by leading blank
// cells equal to the first day's weekday index.
func MonthGrid(year int, month time.Month) []Cell {
	start := StartWeekday(year, month)
	days := DaysIn(year, month)

	grid := make([]Cell, 0, start+days)
	for i := 0; i < start; i++ {
		grid = append(grid, Cell{})
	}
	for day := 1; day <= days; day++ {
		grid = append(grid, Cell{
			Day:  day,
			Date: time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(LayoutISO),
		})
	}
	return grid
}

// NextMonth normalizes to the first of the following month.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// PrevMonth normalizes to the first of the preceding month.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// ParseISO validates an ISO YYYY-MM-DD date string.
func ParseISO(date string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, date, time.Local)
}

// Entry is one dated memory note.
type Entry struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// Entries projects a memories map to the visible list. When the selected
// date has a memory only that entry is returned; otherwise every entry,
// sorted by date descending.
func Entries(memories map[string]string, selected string) []Entry {
	if selected != "" {
		if text, ok := memories[selected]; ok {
			return []Entry{{Date: selected, Text: text}}
		}
	}

	entries := make([]Entry, 0, len(memories))
	for date, text := range memories {
		entries = append(entries, Entry{Date: date, Text: text})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries
}
