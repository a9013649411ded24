package store

import (
	"context"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestJSONRoundTrip(t *testing.T) {
	kv, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	want := []string{"trips", "us"}
	if err := kv.SetJSON(KeyFolders, want); err != nil {
		t.Fatalf("set folders: %v", err)
	}

	got := JSON[[]string](kv, KeyFolders, nil)
	if len(got) != 2 || got[0] != "trips" || got[1] != "us" {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestJSONFallsBackOnBadValues(t *testing.T) {
	kv, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	tests := []struct {
		name  string
		store func() error
	}{
		{name: "missing key", store: func() error { return nil }},
		{name: "empty value", store: func() error { return kv.SetString(KeyFolders, "") }},
		{name: "literal null", store: func() error { return kv.SetString(KeyFolders, "null") }},
		{name: "literal undefined", store: func() error { return kv.SetString(KeyFolders, "undefined") }},
		{name: "malformed json", store: func() error { return kv.SetString(KeyFolders, "{nope") }},
		{name: "wrong shape", store: func() error { return kv.SetString(KeyFolders, `{"a":1}`) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.store(); err != nil {
				t.Fatalf("store value: %v", err)
			}
			got := JSON[[]string](kv, KeyFolders, []string{"fallback"})
			if len(got) != 1 || got[0] != "fallback" {
				t.Fatalf("expected fallback, got %v", got)
			}
		})
	}
}

func TestGetStringFallback(t *testing.T) {
	kv, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	if got := kv.GetString(KeyMood, "love"); got != "love" {
		t.Fatalf("expected fallback for missing key, got %q", got)
	}
	if err := kv.SetString(KeyMood, "night"); err != nil {
		t.Fatalf("set mood: %v", err)
	}
	if got := kv.GetString(KeyMood, "love"); got != "night" {
		t.Fatalf("expected stored value, got %q", got)
	}
	if err := kv.SetString(KeyMood, "undefined"); err != nil {
		t.Fatalf("set mood: %v", err)
	}
	if got := kv.GetString(KeyMood, "love"); got != "love" {
		t.Fatalf("expected fallback for undefined marker, got %q", got)
	}
}

func TestWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	kv, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := kv.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := kv.SetJSON(KeyFolders, []string{"trips"}); err != nil {
		t.Fatalf("set folders: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == KeyFolders {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for folder change event")
		}
	}
}
