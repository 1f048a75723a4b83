package histutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemStoreHistory(t *testing.T) {
	h := NewHistory(NewMemStore())
	h.Add("echo one")
	h.Add("echo two")
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	all := h.All()
	if all[0] != "echo one" || all[1] != "echo two" {
		t.Errorf("All() = %#v", all)
	}
}

func TestDBStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.boltdb")

	s1, err := OpenDBStore(path)
	if err != nil {
		t.Fatal(err)
	}
	h1 := NewHistory(s1)
	h1.Add("echo one")
	h1.Add("echo two")
	s1.(*dbStore).Close()

	s2, err := OpenDBStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.(*dbStore).Close()
	h2 := NewHistory(s2)
	all := h2.All()
	if len(all) != 2 || all[0] != "echo one" || all[1] != "echo two" {
		t.Errorf("reopened history = %#v", all)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.txt")
	err := SaveFile(path, []string{"echo one", "echo two"})
	if err != nil {
		t.Fatal(err)
	}
	lines, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "echo one" || lines[1] != "echo two" {
		t.Errorf("LoadFile = %#v", lines)
	}
}

func TestLoadFileSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.txt")
	os.WriteFile(path, []byte("echo one\n\n   \necho two\n"), 0o644)
	lines, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Errorf("LoadFile = %#v, want 2 non-blank lines", lines)
	}
}
