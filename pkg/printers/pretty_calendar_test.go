package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestMonthPrintsGridWithSelection(t *testing.T) {
	buf := &bytes.Buffer{}
	savedOut := color.Output
	savedNoColor := color.NoColor
	color.Output = buf
	color.NoColor = true
	defer func() {
		color.Output = savedOut
		color.NoColor = savedNoColor
	}()

	pp := PrettyPrint{}
	has := func(date string) bool { return date == "2026-02-03" }
	pp.Month(2026, time.February, has, "2026-02-14")

	out := buf.String()
	if !strings.Contains(out, "February 2026") {
		t.Fatalf("expected month title, got %q", out)
	}
	if !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected weekday header, got %q", out)
	}
	if !strings.Contains(out, "14") || !strings.Contains(out, "28") {
		t.Fatalf("expected day cells including the selected date, got %q", out)
	}
}
