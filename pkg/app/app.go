// Package app owns the application state: every collection hydrated from
// the store, mutated by handlers, and flushed back after every mutation.
// There are no ambient singletons; the CLI and UI share one *State.
package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/keepsake/pkg/calendar"
	"tableflip.dev/keepsake/pkg/chat"
	"tableflip.dev/keepsake/pkg/mood"
	"tableflip.dev/keepsake/pkg/photo"
	"tableflip.dev/keepsake/pkg/store"
)

// AllFolders is the sentinel for "no folder filter". It is not a real
// folder: it cannot be created or deleted and never owns photos.
const AllFolders = "__ALL__"

// AllFoldersLabel is the display name of the sentinel.
const AllFoldersLabel = "All Photos"

// TabCount is the number of navigation tabs (home, voice, chat, calendar).
const TabCount = 4

var (
	ErrEmptyName       = errors.New("app: folder name required")
	ErrDuplicateFolder = errors.New("app: folder already exists")
	ErrFolderNotFound  = errors.New("app: folder not found")
	ErrEmptyMessage    = errors.New("app: message text required")
)

// State is the single authoritative copy of all persisted collections plus
// the transient UI filters. Every mutating method persists before returning,
// so a reload is always safe.
type State struct {
	kv store.KV

	folders  []string
	photos   []photo.Photo
	liked    []string
	notes    map[string]string
	messages []chat.Message
	memories map[string]string

	selectedFolder string
	likedOnly      bool
	tab            int
	moodMode       mood.Mood

	now func() time.Time
}

// Load hydrates a State from the store, substituting documented defaults
// for anything missing or unreadable and reconciling a stale folder
// selection back to the sentinel.
func Load(kv store.KV) (*State, error) {
	if kv == nil {
		return nil, errors.New("app: no persistence configured")
	}

	s := &State{
		kv:       kv,
		folders:  store.JSON(kv, store.KeyFolders, []string{}),
		photos:   store.JSON(kv, store.KeyPhotos, []photo.Photo{}),
		liked:    store.JSON(kv, store.KeyLiked, []string{}),
		notes:    store.JSON(kv, store.KeyNotes, map[string]string{}),
		messages: store.JSON(kv, store.KeyChat, []chat.Message{}),
		memories: store.JSON(kv, store.KeyMemories, map[string]string{}),
		now:      time.Now,
	}

	s.selectedFolder = kv.GetString(store.KeySelected, AllFolders)
	if s.selectedFolder != AllFolders && !s.hasFolder(s.selectedFolder) {
		s.selectedFolder = AllFolders
	}

	s.tab = 0
	if raw := kv.GetString(store.KeyTab, "0"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && i >= 0 && i < TabCount {
			s.tab = i
		}
	}

	m, err := mood.Parse(kv.GetString(store.KeyMood, string(mood.Default)))
	if err != nil {
		m = mood.Default
	}
	s.moodMode = m

	return s, nil
}

func (s *State) hasFolder(name string) bool {
	for _, f := range s.folders {
		if f == name {
			return true
		}
	}
	return false
}

// Folders returns all folder names with the sentinel first.
func (s *State) Folders() []string {
	out := make([]string, 0, len(s.folders)+1)
	out = append(out, AllFolders)
	out = append(out, s.folders...)
	return out
}

// CreateFolder appends a new folder. Empty names and duplicates are
// rejected without touching the store.
func (s *State) CreateFolder(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if name == AllFolders || s.hasFolder(name) {
		return ErrDuplicateFolder
	}
	s.folders = append(s.folders, name)
	return s.kv.SetJSON(store.KeyFolders, s.folders)
}

// DeleteFolder removes the folder and cascades to every photo inside it.
// A deleted selection resets to the sentinel. Folders, photos, and the
// selection are all persisted.
func (s *State) DeleteFolder(name string) error {
	if !s.hasFolder(name) {
		return ErrFolderNotFound
	}

	kept := s.folders[:0]
	for _, f := range s.folders {
		if f != name {
			kept = append(kept, f)
		}
	}
	s.folders = kept

	if err := s.deletePhotosInFolder(name); err != nil {
		return err
	}
	if s.selectedFolder == name {
		s.selectedFolder = AllFolders
	}
	if err := s.kv.SetJSON(store.KeyFolders, s.folders); err != nil {
		return err
	}
	return s.kv.SetString(store.KeySelected, s.selectedFolder)
}

// CoverPhoto returns the first photo (by insertion order) in the folder.
func (s *State) CoverPhoto(name string) (photo.Photo, bool) {
	for _, p := range s.photos {
		if p.Folder == name {
			return p, true
		}
	}
	return photo.Photo{}, false
}

// AddPhoto creates a photo bound to the current selection; a sentinel
// selection leaves it folderless.
func (s *State) AddPhoto(data, caption string) (photo.Photo, error) {
	folder := ""
	if s.selectedFolder != AllFolders {
		folder = s.selectedFolder
	}
	p := photo.New(data, folder, caption)
	s.photos = append(s.photos, p)
	return p, s.kv.SetJSON(store.KeyPhotos, s.photos)
}

// DeletePhotoAt removes the photo at index i; out of range is a no-op.
func (s *State) DeletePhotoAt(i int) error {
	if i < 0 || i >= len(s.photos) {
		return nil
	}
	s.photos = append(s.photos[:i], s.photos[i+1:]...)
	return s.kv.SetJSON(store.KeyPhotos, s.photos)
}

// DeletePhotoByKey removes the first photo with the derived key; a missing
// key is a no-op.
func (s *State) DeletePhotoByKey(key string) error {
	for i, p := range s.photos {
		if p.Key() == key {
			return s.DeletePhotoAt(i)
		}
	}
	return nil
}

func (s *State) deletePhotosInFolder(name string) error {
	kept := s.photos[:0]
	for _, p := range s.photos {
		if p.Folder != name {
			kept = append(kept, p)
		}
	}
	s.photos = kept
	return s.kv.SetJSON(store.KeyPhotos, s.photos)
}

// Photos returns every photo in insertion order.
func (s *State) Photos() []photo.Photo {
	out := make([]photo.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// Visible projects the photo list through the current folder selection and
// the liked-only toggle, preserving insertion order. Never nil.
func (s *State) Visible() []photo.Photo {
	out := make([]photo.Photo, 0, len(s.photos))
	for _, p := range s.photos {
		if s.selectedFolder != AllFolders && p.Folder != s.selectedFolder {
			continue
		}
		if s.likedOnly && !s.likedKey(p.Key()) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *State) likedKey(key string) bool {
	for _, k := range s.liked {
		if k == key {
			return true
		}
	}
	return false
}

// ToggleLike flips like membership for the photo's derived key. Calling it
// twice restores the original set.
func (s *State) ToggleLike(p photo.Photo) error {
	key := p.Key()
	for i, k := range s.liked {
		if k == key {
			s.liked = append(s.liked[:i], s.liked[i+1:]...)
			return s.kv.SetJSON(store.KeyLiked, s.liked)
		}
	}
	s.liked = append(s.liked, key)
	return s.kv.SetJSON(store.KeyLiked, s.liked)
}

// Liked reports like membership for the photo.
func (s *State) Liked(p photo.Photo) bool {
	return s.likedKey(p.Key())
}

// SetNote trims and upserts the note for the photo; an empty result
// removes the entry instead of storing an empty string.
func (s *State) SetNote(p photo.Photo, text string) error {
	key := p.Key()
	text = strings.TrimSpace(text)
	if text == "" {
		delete(s.notes, key)
	} else {
		s.notes[key] = text
	}
	return s.kv.SetJSON(store.KeyNotes, s.notes)
}

// Note returns the stored note for the photo, if any.
func (s *State) Note(p photo.Photo) (string, bool) {
	text, ok := s.notes[p.Key()]
	return text, ok
}

// AppendMessage stamps and appends a chat message, truncating history to
// the most recent entries on every append before persisting.
func (s *State) AppendMessage(text string) (chat.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.Message{}, ErrEmptyMessage
	}
	msg := chat.New(text, s.now())
	s.messages = chat.Truncate(append(s.messages, msg))
	return msg, s.kv.SetJSON(store.KeyChat, s.messages)
}

// Messages returns the chat history in chronological order.
func (s *State) Messages() []chat.Message {
	out := make([]chat.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// DeleteMessage removes one message by position.
func (s *State) DeleteMessage(i int) error {
	if i < 0 || i >= len(s.messages) {
		return fmt.Errorf("app: message index %d out of range", i)
	}
	s.messages = append(s.messages[:i], s.messages[i+1:]...)
	return s.kv.SetJSON(store.KeyChat, s.messages)
}

// SetMemory trims and upserts the memory for the ISO date; an empty result
// removes the entry.
func (s *State) SetMemory(date, text string) error {
	if _, err := calendar.ParseISO(date); err != nil {
		return fmt.Errorf("app: invalid date %q: %w", date, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		delete(s.memories, date)
	} else {
		s.memories[date] = text
	}
	return s.kv.SetJSON(store.KeyMemories, s.memories)
}

// Memory returns the memory stored for the ISO date, if any.
func (s *State) Memory(date string) (string, bool) {
	text, ok := s.memories[date]
	return text, ok
}

// DeleteMemory removes the memory for the ISO date; absent is a no-op.
func (s *State) DeleteMemory(date string) error {
	delete(s.memories, date)
	return s.kv.SetJSON(store.KeyMemories, s.memories)
}

// MemoryEntries projects the memories map for display: a focused date with
// a memory yields that single entry, otherwise all entries date-descending.
func (s *State) MemoryEntries(selected string) []calendar.Entry {
	return calendar.Entries(s.memories, selected)
}

// HasMemory reports whether the ISO date has a stored memory.
func (s *State) HasMemory(date string) bool {
	_, ok := s.memories[date]
	return ok
}

// SelectFolder persists the folder selection. The sentinel is always valid.
func (s *State) SelectFolder(name string) error {
	if name != AllFolders && !s.hasFolder(name) {
		return ErrFolderNotFound
	}
	s.selectedFolder = name
	return s.kv.SetString(store.KeySelected, name)
}

// SelectedFolder returns the active folder name or the sentinel.
func (s *State) SelectedFolder() string {
	return s.selectedFolder
}

// SetLikedOnly flips the transient liked-only filter; never persisted.
func (s *State) SetLikedOnly(on bool) {
	s.likedOnly = on
}

// LikedOnly reports the transient liked-only filter.
func (s *State) LikedOnly() bool {
	return s.likedOnly
}

// SelectTab persists the active tab index.
func (s *State) SelectTab(i int) error {
	if i < 0 || i >= TabCount {
		return fmt.Errorf("app: tab index %d out of range", i)
	}
	s.tab = i
	return s.kv.SetString(store.KeyTab, strconv.Itoa(i))
}

// Tab returns the active tab index.
func (s *State) Tab() int {
	return s.tab
}

// SetMood persists the active mood theme.
func (s *State) SetMood(m mood.Mood) error {
	s.moodMode = m
	return s.kv.SetString(store.KeyMood, string(m))
}

// Mood returns the active mood theme.
func (s *State) Mood() mood.Mood {
	return s.moodMode
}
