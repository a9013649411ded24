// Package teaui hosts the Bubble Tea program for the keepsake UI.
package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/keepsake/pkg/app"
	"tableflip.dev/keepsake/pkg/calendar"
	"tableflip.dev/keepsake/pkg/gesture"
	"tableflip.dev/keepsake/pkg/mood"
	"tableflip.dev/keepsake/pkg/photo"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeConfirm
)

type action int

const (
	actionNone action = iota
	actionAddFolder
	actionNote
	actionChatSay
	actionMemorySet
)

type confirmTarget int

const (
	confirmNone confirmTarget = iota
	confirmDeleteFolder
	confirmDeletePhoto
	confirmDeleteMessage
	confirmDeleteMemory
)

var tabNames = []string{"Photos", "Voice", "Chat", "Calendar"}

// folder item for the left list
type folderItem struct {
	name  string
	label string
	count int
}

func (f folderItem) Title() string       { return fmt.Sprintf("%s (%d)", f.label, f.count) }
func (f folderItem) Description() string { return "" }
func (f folderItem) FilterValue() string { return f.label }

// photo item for the right list
type photoItem struct {
	p     photo.Photo
	liked bool
	note  string
}

func (it photoItem) Title() string {
	title := it.p.Title()
	if it.liked {
		title = "♥ " + title
	}
	return title
}
func (it photoItem) Description() string { return it.note }
func (it photoItem) FilterValue() string { return it.p.Caption }

type errMsg struct{ err error }

type holdTickMsg struct{}

// Model contains UI state.
type Model struct {
	svc *app.State

	mode    mode
	action  action
	confirm confirmTarget

	tab   int
	theme Theme

	focus   int // 0: folders, 1: photos
	folList list.Model
	phoList list.Model

	input textinput.Model

	chatCursor int
	hold       *gesture.LongPress

	calYear     int
	calMonth    time.Month
	calSelected string

	status string

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the State.
func New(svc *app.State) Model {
	d1 := list.NewDefaultDelegate()
	d1.ShowDescription = false
	d1.SetSpacing(0)
	d2 := list.NewDefaultDelegate()
	d2.SetSpacing(0)

	l1 := list.New([]list.Item{}, d1, 28, 20)
	l1.Title = "Folders"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, d2, 60, 20)
	l2.Title = "Photos"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 512
	ti.Prompt = ""

	now := time.Now()
	m := Model{
		svc:      svc,
		tab:      svc.Tab(),
		theme:    themeFor(svc.Mood()),
		folList:  l1,
		phoList:  l2,
		input:    ti,
		hold:     gesture.New(),
		calYear:  now.Year(),
		calMonth: now.Month(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-projects every visible collection from the authoritative
// state; nothing renders from stale copies.
func (m *Model) refresh() {
	photos := m.svc.Photos()
	folItems := make([]list.Item, 0)
	for _, name := range m.svc.Folders() {
		it := folderItem{name: name, label: name}
		if name == app.AllFolders {
			it.label = app.AllFoldersLabel
			it.count = len(photos)
		} else {
			for _, p := range photos {
				if p.Folder == name {
					it.count++
				}
			}
		}
		folItems = append(folItems, it)
	}
	m.folList.SetItems(folItems)

	phoItems := make([]list.Item, 0)
	for _, p := range m.svc.Visible() {
		note, _ := m.svc.Note(p)
		phoItems = append(phoItems, photoItem{p: p, liked: m.svc.Liked(p), note: note})
	}
	m.phoList.SetItems(phoItems)

	if msgs := m.svc.Messages(); m.chatCursor >= len(msgs) {
		m.chatCursor = len(msgs) - 1
	}
	if m.chatCursor < 0 {
		m.chatCursor = 0
	}
}

func (m *Model) currentPhoto() (photo.Photo, bool) {
	if it, ok := m.phoList.SelectedItem().(photoItem); ok {
		return it.p, true
	}
	return photo.Photo{}, false
}

func (m *Model) fail(err error) {
	if err != nil {
		m.status = "ERR: " + err.Error()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case holdTickMsg:
		if m.tab == 2 && m.hold.Fire(time.Now()) && len(m.svc.Messages()) > 0 {
			m.mode = modeConfirm
			m.confirm = confirmDeleteMessage
			m.status = "Delete this message? (y/n)"
		}
	case tea.MouseClickMsg:
		if m.tab == 2 && m.mode == modeNormal {
			m.hold.Press(time.Now())
			cmds = append(cmds, tea.Tick(gesture.LongPressThreshold, func(time.Time) tea.Msg {
				return holdTickMsg{}
			}))
		}
	case tea.MouseReleaseMsg:
		m.hold.Release()
	case tea.MouseMotionMsg:
		m.hold.Cancel()
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeConfirm:
			m.runConfirm(msg.String())
			skipListRouting = true
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.runInsert(strings.TrimSpace(m.input.Value()))
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				m.status = "Cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
				skipListRouting = true
			}
		case modeNormal:
			if msg.String() == "q" {
				return m, tea.Quit
			}
			skipListRouting = m.handleNormalKey(msg.String())
		}
	}

	if !skipListRouting && m.tab == 0 && m.mode == modeNormal {
		var cmd tea.Cmd
		if m.focus == 0 {
			m.folList, cmd = m.folList.Update(msg)
		} else {
			m.phoList, cmd = m.phoList.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleNormalKey returns true when the key was consumed.
func (m *Model) handleNormalKey(key string) bool {
	switch key {
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		m.fail(m.svc.SelectTab(i))
		m.tab = m.svc.Tab()
		return true
	case "tab":
		m.fail(m.svc.SelectTab((m.svc.Tab() + 1) % app.TabCount))
		m.tab = m.svc.Tab()
		return true
	case "M":
		m.cycleMood()
		return true
	}

	switch m.tab {
	case 0:
		return m.handlePhotosKey(key)
	case 2:
		return m.handleChatKey(key)
	case 3:
		return m.handleCalendarKey(key)
	}
	return false
}

func (m *Model) cycleMood() {
	all := mood.All()
	for i, cand := range all {
		if cand == m.svc.Mood() {
			m.fail(m.svc.SetMood(all[(i+1)%len(all)]))
			break
		}
	}
	m.theme = themeFor(m.svc.Mood())
	m.status = "Mood: " + m.svc.Mood().String()
}

func (m *Model) handlePhotosKey(key string) bool {
	switch key {
	case "left", "h":
		m.focus = 0
		return true
	case "right", "l":
		m.focus = 1
		return true
	case "enter":
		if m.focus == 0 {
			if it, ok := m.folList.SelectedItem().(folderItem); ok {
				m.fail(m.svc.SelectFolder(it.name))
				m.refresh()
			}
			return true
		}
	case "a":
		if m.focus == 0 {
			m.enterInsert(actionAddFolder, "Name for new folder")
			return true
		}
	case "v":
		m.svc.SetLikedOnly(!m.svc.LikedOnly())
		m.refresh()
		return true
	case "y":
		if p, ok := m.currentPhoto(); ok {
			m.fail(m.svc.ToggleLike(p))
			m.refresh()
		}
		return true
	case "n":
		if p, ok := m.currentPhoto(); ok {
			m.enterInsert(actionNote, "Add / edit note")
			if note, ok := m.svc.Note(p); ok {
				m.input.SetValue(note)
			}
		}
		return true
	case "x":
		if m.focus == 0 {
			if it, ok := m.folList.SelectedItem().(folderItem); ok && it.name != app.AllFolders {
				m.mode = modeConfirm
				m.confirm = confirmDeleteFolder
				m.status = fmt.Sprintf("Delete folder %q and all its photos? (y/n)", it.name)
			}
		} else if _, ok := m.currentPhoto(); ok {
			m.mode = modeConfirm
			m.confirm = confirmDeletePhoto
			m.status = "Delete this photo? (y/n)"
		}
		return true
	}
	return false
}

func (m *Model) handleChatKey(key string) bool {
	msgs := m.svc.Messages()
	switch key {
	case "up", "k":
		if m.chatCursor > 0 {
			m.chatCursor--
		}
		return true
	case "down", "j":
		if m.chatCursor < len(msgs)-1 {
			m.chatCursor++
		}
		return true
	case "i", "enter":
		m.enterInsert(actionChatSay, "Say something")
		return true
	case "x":
		if len(msgs) > 0 {
			m.mode = modeConfirm
			m.confirm = confirmDeleteMessage
			m.status = "Delete this message? (y/n)"
		}
		return true
	}
	return false
}

func (m *Model) handleCalendarKey(key string) bool {
	sel := m.selectedDate()
	switch key {
	case "left":
		m.moveSelected(sel, -1)
		return true
	case "right":
		m.moveSelected(sel, 1)
		return true
	case "up":
		m.moveSelected(sel, -7)
		return true
	case "down":
		m.moveSelected(sel, 7)
		return true
	case "[":
		m.calYear, m.calMonth = calendar.PrevMonth(m.calYear, m.calMonth)
		m.calSelected = ""
		return true
	case "]":
		m.calYear, m.calMonth = calendar.NextMonth(m.calYear, m.calMonth)
		m.calSelected = ""
		return true
	case "enter":
		m.enterInsert(actionMemorySet, "Memory for "+sel)
		if text, ok := m.svc.Memory(sel); ok {
			m.input.SetValue(text)
		}
		return true
	case "x":
		if m.svc.HasMemory(sel) {
			m.mode = modeConfirm
			m.confirm = confirmDeleteMemory
			m.status = fmt.Sprintf("Delete the memory for %s? (y/n)", sel)
		}
		return true
	}
	return false
}

func (m *Model) selectedDate() string {
	if m.calSelected != "" {
		return m.calSelected
	}
	return time.Date(m.calYear, m.calMonth, 1, 0, 0, 0, 0, time.Local).Format(calendar.LayoutISO)
}

func (m *Model) moveSelected(sel string, days int) {
	t, err := calendar.ParseISO(sel)
	if err != nil {
		return
	}
	t = t.AddDate(0, 0, days)
	m.calYear, m.calMonth = t.Year(), t.Month()
	m.calSelected = t.Format(calendar.LayoutISO)
}

func (m *Model) enterInsert(a action, placeholder string) {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.Reset()
	m.input.Focus()
}

func (m *Model) runInsert(value string) {
	switch m.action {
	case actionAddFolder:
		if value != "" {
			m.fail(m.svc.CreateFolder(value))
		}
	case actionNote:
		if p, ok := m.currentPhoto(); ok {
			m.fail(m.svc.SetNote(p, value))
		}
	case actionChatSay:
		if value != "" {
			if _, err := m.svc.AppendMessage(value); err != nil {
				m.fail(err)
			} else {
				m.chatCursor = len(m.svc.Messages()) - 1
			}
		}
	case actionMemorySet:
		m.fail(m.svc.SetMemory(m.selectedDate(), value))
	}
	m.refresh()
}

func (m *Model) runConfirm(key string) {
	confirmed := key == "y" || key == "Y"
	target := m.confirm
	m.mode = modeNormal
	m.confirm = confirmNone
	m.status = ""
	if !confirmed {
		m.status = "Cancelled"
		return
	}

	switch target {
	case confirmDeleteFolder:
		if it, ok := m.folList.SelectedItem().(folderItem); ok {
			m.fail(m.svc.DeleteFolder(it.name))
		}
	case confirmDeletePhoto:
		if p, ok := m.currentPhoto(); ok {
			m.fail(m.svc.DeletePhotoByKey(p.Key()))
		}
	case confirmDeleteMessage:
		m.fail(m.svc.DeleteMessage(m.chatCursor))
	case confirmDeleteMemory:
		m.fail(m.svc.DeleteMemory(m.selectedDate()))
	}
	m.refresh()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case 0:
		left := m.folList.View()
		right := m.phoList.View()
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	case 1:
		b.WriteString(m.theme.Status.Render("Voice memories are not recorded here yet."))
	case 2:
		b.WriteString(m.viewChat())
	case 3:
		b.WriteString(m.viewCalendar())
	}

	if m.mode == modeInsert {
		b.WriteString("\n\n" + m.input.Placeholder + ": " + m.input.View())
	}

	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("1-4 tabs · M mood · q quit"))
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == m.tab {
			parts = append(parts, m.theme.TabActive.Render(name))
		} else {
			parts = append(parts, m.theme.Tab.Render(name))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewChat() string {
	msgs := m.svc.Messages()
	if len(msgs) == 0 {
		return m.theme.Status.Render("No messages yet.")
	}

	width := m.termWidth - 10
	if width < 20 {
		width = 60
	}

	var b strings.Builder
	for i, msg := range msgs {
		bubble := m.theme.Bubble
		if i == m.chatCursor {
			bubble = m.theme.BubbleFocus
		}
		b.WriteString(bubble.Render(wordwrap.String(msg.Text, width)))
		b.WriteString(" ")
		b.WriteString(m.theme.Time.Render(msg.Time))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", m.calMonth.String(), m.calYear)
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.theme.Day.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	now := time.Now()
	col := 0
	for _, cell := range calendar.MonthGrid(m.calYear, m.calMonth) {
		if cell.Blank() {
			b.WriteString("   ")
		} else {
			style := m.theme.Day
			if m.svc.HasMemory(cell.Date) {
				style = m.theme.DayMemory
			}
			if cell.Date == m.selectedDate() {
				style = style.Inherit(m.theme.DaySelected)
			} else if now.Year() == m.calYear && now.Month() == m.calMonth && now.Day() == cell.Day {
				style = style.Inherit(m.theme.DayToday)
			}
			b.WriteString(style.Render(fmt.Sprintf("%2d", cell.Day)))
			b.WriteString(" ")
		}
		col++
		if col == 7 {
			col = 0
			b.WriteString("\n")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, e := range m.svc.MemoryEntries(m.calSelected) {
		b.WriteString(m.theme.Title.Render(e.Date))
		b.WriteString("  ")
		b.WriteString(e.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) applySizes() {
	h := m.termHeight - 8
	if h < 5 {
		h = 5
	}
	folW := 28
	phoW := m.termWidth - folW - 4
	if phoW < 20 {
		phoW = 20
	}
	m.folList.SetSize(folW, h)
	m.phoList.SetSize(phoW, h)
}

// Run launches the Bubble Tea UI.
func Run(svc *app.State) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
