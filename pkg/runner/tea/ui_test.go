package teaui

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/mood"
	"tableflip.dev/keepsake/pkg/store"
)

type memKV struct {
	values map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{values: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memKV) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.values[key] = data
	return nil
}

func (m *memKV) GetString(key, fallback string) string {
	v, ok := m.values[key]
	if !ok {
		return fallback
	}
	s := strings.TrimSpace(string(v))
	if s == "" || s == "null" || s == "undefined" {
		return fallback
	}
	return s
}

func (m *memKV) SetString(key, value string) error {
	m.values[key] = []byte(value)
	return nil
}

func (m *memKV) Keys(ctx context.Context) []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}

func (m *memKV) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestModel(t *testing.T) (Model, *app.State) {
	t.Helper()
	svc, err := app.Load(newMemKV())
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	m := New(svc)
	m.termWidth = 96
	m.termHeight = 28
	m.applySizes()
	return m, svc
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewShowsTabsAndAllPhotos(t *testing.T) {
	m, _ := newTestModel(t)

	view := stripANSI(m.View())
	for _, name := range tabNames {
		if !strings.Contains(view, name) {
			t.Fatalf("expected tab %q in view; view=%q", name, view)
		}
	}
	if !strings.Contains(view, app.AllFoldersLabel) {
		t.Fatalf("expected built-in folder in view; view=%q", view)
	}
}

func TestTabKeysSwitchAndPersist(t *testing.T) {
	m, svc := newTestModel(t)

	if !m.handleNormalKey("4") {
		t.Fatalf("expected tab key to be consumed")
	}
	if m.tab != 3 {
		t.Fatalf("expected tab 3, got %d", m.tab)
	}
	if svc.Tab() != 3 {
		t.Fatalf("expected persisted tab 3, got %d", svc.Tab())
	}
}

func TestMoodKeyCyclesTheme(t *testing.T) {
	m, svc := newTestModel(t)

	if svc.Mood() != mood.Love {
		t.Fatalf("expected default mood, got %s", svc.Mood())
	}
	m.handleNormalKey("M")
	if svc.Mood() != mood.Night {
		t.Fatalf("expected mood to cycle to night, got %s", svc.Mood())
	}
	m.handleNormalKey("M")
	m.handleNormalKey("M")
	if svc.Mood() != mood.Love {
		t.Fatalf("expected mood to wrap back to love, got %s", svc.Mood())
	}
}

func TestInsertAddsFolderAndChatMessage(t *testing.T) {
	m, svc := newTestModel(t)

	m.enterInsert(actionAddFolder, "Name for new folder")
	m.action = actionAddFolder
	m.runInsert("trips")
	if len(svc.Folders()) != 2 {
		t.Fatalf("expected sentinel plus new folder, got %v", svc.Folders())
	}

	m.action = actionChatSay
	m.runInsert("good morning")
	msgs := svc.Messages()
	if len(msgs) != 1 || msgs[0].Text != "good morning" {
		t.Fatalf("expected appended message, got %v", msgs)
	}
	if m.chatCursor != 0 {
		t.Fatalf("expected cursor on newest message, got %d", m.chatCursor)
	}
}

func TestConfirmDeletesMessageOnlyOnYes(t *testing.T) {
	m, svc := newTestModel(t)
	if _, err := svc.AppendMessage("keep me maybe"); err != nil {
		t.Fatalf("append message: %v", err)
	}
	m.refresh()

	m.mode = modeConfirm
	m.confirm = confirmDeleteMessage
	m.runConfirm("n")
	if len(svc.Messages()) != 1 {
		t.Fatalf("expected message kept after decline")
	}

	m.mode = modeConfirm
	m.confirm = confirmDeleteMessage
	m.runConfirm("y")
	if len(svc.Messages()) != 0 {
		t.Fatalf("expected message deleted after confirm")
	}
}

func TestCalendarNavigationAndMemoryView(t *testing.T) {
	m, svc := newTestModel(t)
	m.tab = 3
	m.calYear, m.calMonth = 2026, time.February
	m.calSelected = "2026-02-14"

	if err := svc.SetMemory("2026-02-14", "dinner at the old place"); err != nil {
		t.Fatalf("set memory: %v", err)
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "February 2026") {
		t.Fatalf("expected month title; view=%q", view)
	}
	if !strings.Contains(view, "dinner at the old place") {
		t.Fatalf("expected focused memory entry; view=%q", view)
	}

	m.handleCalendarKey("]")
	if m.calMonth != time.March || m.calYear != 2026 {
		t.Fatalf("expected March 2026, got %s %d", m.calMonth, m.calYear)
	}
	m.handleCalendarKey("[")
	m.handleCalendarKey("[")
	if m.calMonth != time.January || m.calYear != 2026 {
		t.Fatalf("expected January 2026, got %s %d", m.calMonth, m.calYear)
	}
}

func TestCalendarArrowsMoveAcrossMonths(t *testing.T) {
	m, _ := newTestModel(t)
	m.tab = 3
	m.calYear, m.calMonth = 2026, time.March
	m.calSelected = "2026-03-01"

	m.handleCalendarKey("left")
	if m.calSelected != "2026-02-28" {
		t.Fatalf("expected selection to cross month boundary, got %s", m.calSelected)
	}
	if m.calMonth != time.February {
		t.Fatalf("expected visible month to follow selection, got %s", m.calMonth)
	}

	m.handleCalendarKey("down")
	if m.calSelected != "2026-03-07" {
		t.Fatalf("expected one week forward, got %s", m.calSelected)
	}
}

func TestHoldFiresConfirmOnChatTab(t *testing.T) {
	m, svc := newTestModel(t)
	if _, err := svc.AppendMessage("hold to delete"); err != nil {
		t.Fatalf("append message: %v", err)
	}
	m.refresh()
	m.tab = 2

	now := time.Now()
	m.hold.Press(now.Add(-700 * time.Millisecond))
	next, _ := m.Update(holdTickMsg{})
	got := next.(Model)
	if got.mode != modeConfirm || got.confirm != confirmDeleteMessage {
		t.Fatalf("expected hold to open delete confirmation, mode=%v confirm=%v", got.mode, got.confirm)
	}
}
