//go:build unix

package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSearchFindsExecutable(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "mytool")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	got, ok := Search("mytool")
	if !ok {
		t.Fatal("expected to find mytool")
	}
	want, _ := filepath.Abs(exe)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSearchSkipsNonExecutable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if _, ok := Search("data"); ok {
		t.Error("non-executable file should not be found")
	}
}

func TestSearchEmptyPath(t *testing.T) {
	t.Setenv("PATH", "")
	if _, ok := Search("ls"); ok {
		t.Error("empty PATH should never match")
	}
}

func TestSearchSkipsMissingDirs(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	os.WriteFile(exe, []byte("x"), 0o755)
	t.Setenv("PATH", "/no/such/dir"+string(os.PathListSeparator)+dir)

	if _, ok := Search("tool"); !ok {
		t.Error("should find tool in second PATH entry despite missing first")
	}
}
