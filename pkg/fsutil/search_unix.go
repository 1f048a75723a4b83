//go:build unix

package fsutil

import (
	"os"
	"path/filepath"
)

const onWindows = false

// tryDir accepts <dir>/<name> if it exists, is not a directory, and any
// of the user/group/other execute bits is set.
func tryDir(dir, name string) (string, bool) {
	candidate := filepath.Join(dir, name)
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", false
	}
	if info.Mode()&0o111 == 0 {
		return "", false
	}
	return candidate, true
}

func isExecutableEntry(info os.FileInfo) bool {
	return !info.IsDir() && info.Mode()&0o111 != 0
}

func isExecutableExtName(string) bool {
	return false
}
