// Package fsutil resolves a command name to an absolute executable path
// by walking the host's PATH, honoring Unix permission-bit and Windows
// PATHEXT rules.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// splitPath splits a PATH-like string on the host's list separator,
// dropping empty entries.
func splitPath(path string) []string {
	var dirs []string
	for _, d := range strings.Split(path, string(os.PathListSeparator)) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Search resolves name to an absolute executable path by walking the
// PATH environment variable, read fresh on every call. It returns ok ==
// false if PATH is empty/unset or no candidate is accepted.
func Search(name string) (string, bool) {
	path := os.Getenv("PATH")
	if path == "" {
		return "", false
	}
	for _, dir := range splitPath(path) {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if p, ok := tryDir(dir, name); ok {
			abs, err := filepath.Abs(p)
			if err != nil {
				return p, true
			}
			return abs, true
		}
	}
	return "", false
}
