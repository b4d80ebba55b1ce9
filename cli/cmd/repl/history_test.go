package repl

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestHistory_AddAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() of missing file error = %v", err)
	}

	for _, add := range []HistoryEntry{
		{"var a = 1;", modeEval},
		{"list", modeCtrl},
		{"a + 1", modeEval},
		{"a + 1", modeEval},
		{"   ", modeEval},
	} {
		if err := h.Add(add.Line, add.Mode); err != nil {
			t.Fatalf("Add(%q) error = %v", add.Line, err)
		}
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []HistoryEntry{
		{"var a = 1;", modeEval},
		{"list", modeCtrl},
		{"a + 1", modeEval},
	}

	got := reloaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHistory_DuplicateMovesToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	for _, line := range []string{"a", "b", "a"} {
		if err := h.Add(line, modeEval); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "E:b\nE:a\n" {
		t.Errorf("file = %q", data)
	}

	// The same line in a different mode is a distinct entry.
	if err := h.Add("a", modeCtrl); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestHistory_Entry(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	if _, err := h.Entry(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Entry(0) error = %v, want ErrOutOfBounds", err)
	}

	if err := h.Add("x", modeEval); err != nil {
		t.Fatal(err)
	}

	if e, err := h.Entry(0); err != nil || e.Line != "x" {
		t.Errorf("Entry(0) = %v, %v", e, err)
	}

	if _, err := h.Entry(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Entry(-1) error = %v, want ErrOutOfBounds", err)
	}
}

func TestHistory_Trim(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	for i := range historyMax + 5 {
		if err := h.Add("print "+strconv.Itoa(i), modeEval); err != nil {
			t.Fatal(err)
		}
	}

	if h.Len() != historyMax {
		t.Errorf("Len() = %d, want %d", h.Len(), historyMax)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if reloaded.Len() != historyMax {
		t.Errorf("reloaded Len() = %d, want %d", reloaded.Len(), historyMax)
	}
}
