// Package repl implements Cedar's read-eval-print loop: prompt, read one
// line (via the raw-mode line editor on a terminal, or a plain scanner
// otherwise), lex, plan, and dispatch through the pipeline engine.
// Grounded on the shape of elvish's cmd/elvish/main.go run loop,
// restructured around this shell's explicit-state builtin model.
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/cedarsh/cedar/pkg/diag"
	"github.com/cedarsh/cedar/pkg/lex"
	"github.com/cedarsh/cedar/pkg/lineedit"
	"github.com/cedarsh/cedar/pkg/pipeline"
	"github.com/cedarsh/cedar/pkg/plan"
	"github.com/cedarsh/cedar/pkg/shellstate"
	"github.com/cedarsh/cedar/pkg/term"
)

// REPL owns the prompt/read/lex/plan/dispatch loop for one session.
type REPL struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	st          *shellstate.State
	editor      *lineedit.Editor
	scanner     *bufio.Scanner
	restoreTerm func() error
}

// New builds a REPL reading from stdin and writing to stdout/stderr. If
// stdin is a terminal, it is switched to raw mode and read through the
// line editor; otherwise lines are read with a plain bufio.Scanner, and
// no prompt echo/completion machinery is engaged.
func New(stdin *os.File, stdout, stderr io.Writer, st *shellstate.State) *REPL {
	r := &REPL{stdin: stdin, stdout: stdout, stderr: stderr, st: st}

	if isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
		if restore, err := term.Setup(stdin); err == nil {
			r.restoreTerm = restore
			r.editor = lineedit.New(term.NewReader(stdin), stdout, st.History)
		}
	}
	if r.editor == nil {
		r.scanner = bufio.NewScanner(stdin)
	}
	return r
}

// Close restores the terminal mode if New put it into raw mode. Safe to
// call unconditionally.
func (r *REPL) Close() error {
	if r.restoreTerm != nil {
		return r.restoreTerm()
	}
	return nil
}

// Run loops prompt/read/lex/plan/dispatch until the shell's exit flag is
// set or the input stream ends.
func (r *REPL) Run() {
	for !r.st.Exit {
		io.WriteString(r.stdout, lineedit.Prompt)

		line, eof, err := r.readLine()
		if err != nil || eof {
			return
		}

		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}

		r.st.History.Add(line)

		tokens := lex.Tokenize(line)
		p, err := plan.Build(tokens)
		if err != nil {
			if err == plan.ErrEmptyStage {
				diag.Complain(r.stderr, "Empty pipeline stage")
			} else {
				diag.Complain(r.stderr, err.Error())
			}
			continue
		}
		if p == nil {
			continue
		}

		pipeline.Run(p, r.stdin, r.stdout, r.stderr, r.st)
	}
}

// readLine reads one line through whichever input path New selected.
func (r *REPL) readLine() (line string, eof bool, err error) {
	if r.editor != nil {
		return r.editor.ReadLine()
	}
	if !r.scanner.Scan() {
		return "", true, r.scanner.Err()
	}
	return r.scanner.Text(), false, nil
}
