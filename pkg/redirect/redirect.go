// Package redirect opens the files named by a stage's redirection spec
// so that a builtin handler can be run with explicit output-sink
// parameters bound to them, following the recommended explicit-sink architecture
// (no mutable global stdout/stderr).
package redirect

import (
	"os"

	"github.com/cedarsh/cedar/pkg/plan"
)

// Files holds the freshly opened files for a stage's redirections, if
// any. A nil field means that target fd was not redirected; the caller
// should keep using its ambient stream.
type Files struct {
	Stdout *os.File
	Stderr *os.File
}

// Open opens every file named in redirs, truncating or appending per its
// Mode. On any open error, every file opened so far is closed before the
// error is returned.
func Open(redirs map[plan.Fd]plan.Redirection) (Files, error) {
	var fs Files
	if r, ok := redirs[plan.Stdout]; ok {
		f, err := openOne(r)
		if err != nil {
			return fs, err
		}
		fs.Stdout = f
	}
	if r, ok := redirs[plan.Stderr]; ok {
		f, err := openOne(r)
		if err != nil {
			fs.Close()
			return fs, err
		}
		fs.Stderr = f
	}
	return fs, nil
}

func openOne(r plan.Redirection) (*os.File, error) {
	flag := os.O_CREATE | os.O_WRONLY
	if r.Mode == plan.Append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	return os.OpenFile(r.Path, flag, 0o644)
}

// Close closes whichever files are non-nil. Safe to call unconditionally
// on every exit path, including error paths.
func (fs Files) Close() {
	if fs.Stdout != nil {
		fs.Stdout.Close()
	}
	if fs.Stderr != nil {
		fs.Stderr.Close()
	}
}
