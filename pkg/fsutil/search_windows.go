package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultPathExt = ".EXE;.BAT;.CMD;.COM"

const onWindows = true

func isExecutableEntry(info os.FileInfo) bool {
	return !info.IsDir() && isExecutableExtName(filepath.Ext(info.Name()))
}

func isExecutableExtName(ext string) bool {
	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		pathext = defaultPathExt
	}
	ext = strings.ToUpper(ext)
	for _, e := range strings.Split(pathext, ";") {
		if strings.ToUpper(e) == ext {
			return true
		}
	}
	return false
}

// tryDir tries <dir>\<name> directly if name already has an extension,
// otherwise tries <dir>\<name><ext> for each extension in PATHEXT (or
// defaultPathExt if PATHEXT is unset).
func tryDir(dir, name string) (string, bool) {
	if filepath.Ext(name) != "" {
		return tryCandidate(filepath.Join(dir, name))
	}

	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		pathext = defaultPathExt
	}
	for _, ext := range strings.Split(pathext, ";") {
		if ext == "" {
			continue
		}
		candidate := filepath.Join(dir, name+ext)
		if p, ok := tryCandidate(candidate); ok {
			return p, true
		}
	}
	return "", false
}

func tryCandidate(candidate string) (string, bool) {
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", false
	}
	return candidate, true
}
