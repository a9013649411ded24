package photo

import "testing"

func TestKeyComposition(t *testing.T) {
	p := New("imgdata", "Trip", "beach.jpg")
	want := "imgdata|Trip|beach.jpg"
	if got := p.Key(); got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}
}

func TestKeyEqualityForIdenticalFields(t *testing.T) {
	a := New("d", "f", "c")
	b := New("d", "f", "c")
	if a.Key() != b.Key() {
		t.Fatalf("distinct photos with identical fields must share a key")
	}
}

func TestKeyFolderless(t *testing.T) {
	p := New("d", "", "c")
	if got := p.Key(); got != "d||c" {
		t.Fatalf("Key() = %q, want %q", got, "d||c")
	}
}

func TestTitleFallback(t *testing.T) {
	if got := (Photo{}).Title(); got != "(untitled)" {
		t.Fatalf("Title() = %q", got)
	}
	if got := New("d", "", "cap").Title(); got != "cap" {
		t.Fatalf("Title() = %q", got)
	}
}
