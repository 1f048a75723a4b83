package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// EachExecutable calls f once for each distinct executable name found by
// walking PATH, for use by tab completion. On Windows, the extension
// recognized via PATHEXT is stripped from the reported name.
func EachExecutable(f func(name string)) {
	path := os.Getenv("PATH")
	seen := map[string]bool{}
	for _, dir := range splitPath(path) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil || !isExecutableEntry(info) {
				continue
			}
			name := displayName(e.Name())
			if !seen[name] {
				seen[name] = true
				f(name)
			}
		}
	}
}

func displayName(name string) string {
	if onWindows {
		ext := filepath.Ext(name)
		if isExecutableExtName(ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
