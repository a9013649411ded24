package calendar

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.April, 30},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.December, 31},
	}
	for _, tc := range tests {
		if got := DaysIn(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestMonthGridApril2024(t *testing.T) {
	// April 2024: 30 days, the 1st is a Monday.
	grid := MonthGrid(2024, time.April)

	blanks := 0
	for _, c := range grid {
		if c.Blank() {
			blanks++
		}
	}
	if blanks != 1 {
		t.Fatalf("leading blanks = %d, want 1", blanks)
	}
	if got := len(grid) - blanks; got != 30 {
		t.Fatalf("date cells = %d, want 30", got)
	}
	if grid[1].Date != "2024-04-01" {
		t.Fatalf("first date cell = %q, want 2024-04-01", grid[1].Date)
	}
	if grid[len(grid)-1].Date != "2024-04-30" {
		t.Fatalf("last date cell = %q, want 2024-04-30", grid[len(grid)-1].Date)
	}
}

func TestMonthNavigationAcrossYears(t *testing.T) {
	y, m := NextMonth(2024, time.December)
	if y != 2025 || m != time.January {
		t.Fatalf("NextMonth(2024, December) = %d, %v", y, m)
	}
	y, m = PrevMonth(2024, time.January)
	if y != 2023 || m != time.December {
		t.Fatalf("PrevMonth(2024, January) = %d, %v", y, m)
	}
}

func TestEntriesFocused(t *testing.T) {
	memories := map[string]string{
		"2024-03-01": "anniversary",
		"2024-05-20": "picnic",
	}
	got := Entries(memories, "2024-03-01")
	if len(got) != 1 {
		t.Fatalf("focused Entries length = %d, want 1", len(got))
	}
	if got[0].Date != "2024-03-01" || got[0].Text != "anniversary" {
		t.Fatalf("focused entry = %+v", got[0])
	}
}

func TestEntriesAllDescending(t *testing.T) {
	memories := map[string]string{
		"2024-03-01": "anniversary",
		"2024-05-20": "picnic",
	}
	got := Entries(memories, "")
	if len(got) != 2 {
		t.Fatalf("Entries length = %d, want 2", len(got))
	}
	if got[0].Date != "2024-05-20" || got[1].Date != "2024-03-01" {
		t.Fatalf("entries not sorted descending: %+v", got)
	}
}

func TestEntriesSelectedWithoutMemory(t *testing.T) {
	memories := map[string]string{"2024-03-01": "anniversary"}
	got := Entries(memories, "2024-04-01")
	if len(got) != 1 || got[0].Date != "2024-03-01" {
		t.Fatalf("selection without a memory should fall back to all entries: %+v", got)
	}
}
