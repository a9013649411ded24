package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestReaderAnswers(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		c := Reader(strings.NewReader(tc.in), &out)
		if got := c("Delete?"); got != tc.want {
			t.Errorf("answer %q = %v, want %v", tc.in, got, tc.want)
		}
		if !strings.Contains(out.String(), "Delete?") {
			t.Errorf("prompt not written for %q", tc.in)
		}
	}
}
