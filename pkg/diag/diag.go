// Package diag prints user-facing diagnostics, colorizing them when the
// destination is a terminal.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Complain writes msg to w followed by a newline. When w is backed by a
// terminal, the message is printed in bold red; otherwise it is written
// verbatim, so that redirected or piped diagnostics never carry escape
// codes.
func Complain(w io.Writer, msg string) {
	if isTerminal(w) {
		c := color.New(color.FgRed, color.Bold)
		c.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, msg)
}

// Complainf is like Complain, but accepts a format string and arguments.
func Complainf(w io.Writer, format string, args ...interface{}) {
	Complain(w, fmt.Sprintf(format, args...))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
