// Package lineedit implements the interactive line editor: a raw-mode
// keystroke loop with history recall and PATH-aware tab completion.
// Grounded on the shape of elvish's pkg/cli/term.Reader/Writer split
// and pkg/edit/complete, simplified to the single-line, single-buffer
// model this shell needs.
package lineedit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cedarsh/cedar/pkg/fsutil"
	"github.com/cedarsh/cedar/pkg/histutil"
	"github.com/cedarsh/cedar/pkg/term"
)

// Prompt is the literal prompt string. The redraw logic below assumes it
// occupies a single line with no wrapping.
const Prompt = "$ "

// builtinCompletions is the completion-only builtin set named by the
// line editor's tab-completion rule; it is deliberately smaller than
// the full builtin registry.
var builtinCompletions = []string{"echo", "exit"}

// Editor reads one line at a time from r, echoing to w, with Up/Down
// recalling entries from h.
type Editor struct {
	r *term.Reader
	w io.Writer
	h *histutil.History
}

// New returns an Editor reading keystrokes from r and echoing to w.
func New(r *term.Reader, w io.Writer, h *histutil.History) *Editor {
	return &Editor{r: r, w: w, h: h}
}

// ReadLine reads one line, echoing and handling history/completion keys
// as it goes. eof is true if the input stream ended before Enter.
func (e *Editor) ReadLine() (line string, eof bool, err error) {
	buf := []rune{}
	histIdx := e.h.Len()
	var live []rune
	tabPending := false

	for {
		ev, rerr := e.r.ReadEvent()
		if rerr != nil {
			return string(buf), false, rerr
		}

		switch ev.Key {
		case term.KeyEOF:
			return string(buf), true, nil

		case term.KeyEnter:
			io.WriteString(e.w, "\r\n")
			return string(buf), false, nil

		case term.KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				io.WriteString(e.w, "\b \b")
			}

		case term.KeyRune:
			buf = append(buf, ev.Rune)
			fmt.Fprintf(e.w, "%c", ev.Rune)

		case term.KeyUp:
			if histIdx > 0 {
				if histIdx == e.h.Len() {
					live = append([]rune(nil), buf...)
				}
				histIdx--
				buf = []rune(e.h.All()[histIdx])
				e.redraw(buf)
			}

		case term.KeyDown:
			if histIdx < e.h.Len() {
				histIdx++
				if histIdx == e.h.Len() {
					buf = append([]rune(nil), live...)
				} else {
					buf = []rune(e.h.All()[histIdx])
				}
				e.redraw(buf)
			}

		case term.KeyTab:
			buf, tabPending = e.completeTab(buf, tabPending)
			continue // preserve tabPending across consecutive Tabs

		default:
		}

		tabPending = false
	}
}

// redraw clears the current line and reprints the prompt and buf.
func (e *Editor) redraw(buf []rune) {
	fmt.Fprintf(e.w, "\r\x1b[K%s%s", Prompt, string(buf))
}

// completeTab implements the Tab-key rule from the line editor's
// completion design: LCP extension when it grows the buffer, otherwise
// a bell on the first Tab and a match listing on a second consecutive
// one. wasPending carries whether the previous key was an unresolved Tab.
func (e *Editor) completeTab(buf []rune, wasPending bool) ([]rune, bool) {
	if strings.ContainsRune(string(buf), ' ') {
		return buf, false
	}

	prefix := string(buf)
	matches := matchCandidates(prefix)

	switch {
	case len(matches) == 0:
		term.Bell(e.w)
		return buf, false

	case len(matches) == 1:
		newBuf := []rune(matches[0] + " ")
		e.redraw(newBuf)
		return newBuf, false

	default:
		lcp := longestCommonPrefix(matches)
		if len(lcp) > len(buf) {
			newBuf := []rune(lcp)
			e.redraw(newBuf)
			return newBuf, false
		}
		if !wasPending {
			term.Bell(e.w)
			return buf, true
		}
		fmt.Fprintf(e.w, "\r\n%s\r\n%s%s", strings.Join(matches, "  "), Prompt, string(buf))
		return buf, false
	}
}

// matchCandidates returns the sorted, deduplicated union of the
// completion-only builtin set and every PATH executable whose name
// starts with prefix.
func matchCandidates(prefix string) []string {
	set := map[string]bool{}
	for _, name := range builtinCompletions {
		if strings.HasPrefix(name, prefix) {
			set[name] = true
		}
	}
	fsutil.EachExecutable(func(name string) {
		if strings.HasPrefix(name, prefix) {
			set[name] = true
		}
	})

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// longestCommonPrefix returns the longest string that is a prefix of
// every entry in ss. ss must be non-empty.
func longestCommonPrefix(ss []string) string {
	prefix := ss[0]
	for _, s := range ss[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
