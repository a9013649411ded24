package teaui

import (
	"fmt"
	"testing"

	"tableflip.dev/keepsake/pkg/mood"
)

func TestThemeAccentFollowsMood(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range mood.All() {
		th := themeFor(m)
		fg := th.Title.GetForeground()
		if fg == nil {
			t.Fatalf("expected accent foreground for mood %s", m)
		}
		r, g, b, a := fg.RGBA()
		key := fmt.Sprintf("%d/%d/%d/%d", r, g, b, a)
		if seen[key] {
			t.Fatalf("expected a distinct accent per mood, %s repeats one", m)
		}
		seen[key] = true
	}
}

func TestThemeUnknownMoodFallsBackToLove(t *testing.T) {
	def := themeFor(mood.Default)
	got := themeFor(mood.Mood("gloomy"))
	dr, dg, db, _ := def.Title.GetForeground().RGBA()
	gr, gg, gb, _ := got.Title.GetForeground().RGBA()
	if dr != gr || dg != gg || db != gb {
		t.Fatalf("expected unknown mood to use the default accent")
	}
}
