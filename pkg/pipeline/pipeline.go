// Package pipeline wires a planned pipeline of one or more stages
// together, mixing builtins and externals, moving bytes between them
// with full in-memory buffering (the shell is synchronous and no stage
// is a long-running producer).
package pipeline

import (
	"bytes"
	"io"

	"github.com/cedarsh/cedar/pkg/builtin"
	"github.com/cedarsh/cedar/pkg/diag"
	"github.com/cedarsh/cedar/pkg/plan"
	"github.com/cedarsh/cedar/pkg/procexec"
	"github.com/cedarsh/cedar/pkg/redirect"
	"github.com/cedarsh/cedar/pkg/shellstate"
)

// Run executes every stage of p in order, connecting each non-terminal
// stage's stdout to the next stage's stdin, and returns once the whole
// pipeline has completed. For a single-stage pipeline this degenerates
// to running that one stage against the ambient stdin/stdout/stderr.
//
// A stage's own stdout/stderr redirection takes
// precedence over pipeline wiring for that descriptor: an intermediate
// stage with a stdout redirection feeds nothing to the next stage's
// stdin.
func Run(p *plan.Pipeline, stdin io.Reader, stdout, stderr io.Writer, st *shellstate.State) {
	n := len(p.Stages)

	// carry holds stdout bytes produced by each stage, for stages that
	// are neither the last stage nor redirected to a file.
	carry := make([]*bytes.Buffer, n)

	for i, stage := range p.Stages {
		var in io.Reader
		switch {
		case i == 0:
			in = stdin
		case hasStdoutRedirection(p.Stages[i-1]):
			in = bytes.NewReader(nil)
		default:
			in = carry[i-1]
		}

		var out io.Writer
		isLast := i == n-1
		if !isLast && !hasStdoutRedirection(stage) {
			buf := &bytes.Buffer{}
			carry[i] = buf
			out = buf
		} else {
			out = stdout
		}

		runStage(stage, in, out, stderr, st)
	}
}

func hasStdoutRedirection(s plan.Stage) bool {
	_, ok := s.Redirections[plan.Stdout]
	return ok
}

// runStage dispatches one stage's argv[0] (lowercased for builtin
// matching) to either the builtin registry or the external runner,
// applying the stage's redirections. Builtins get their streams rebound
// to freshly opened files for the duration of the call;
// externals get their redirections embedded/applied by pkg/procexec.
func runStage(stage plan.Stage, stdin io.Reader, stdout, stderr io.Writer, st *shellstate.State) {
	name := stage.Argv[0]
	args := stage.Argv[1:]

	if handler, ok := builtin.Lookup(name); ok {
		files, err := redirect.Open(stage.Redirections)
		if err != nil {
			diag.Complainf(stderr, "%s: %s", name, err)
			return
		}
		defer files.Close()

		out := stdout
		if files.Stdout != nil {
			out = files.Stdout
		}
		errw := stderr
		if files.Stderr != nil {
			errw = files.Stderr
		}
		handler(args, stdin, out, errw, st)
		return
	}

	procexec.Run(procexec.Command{
		Name:         name,
		Args:         args,
		Redirections: stage.Redirections,
	}, stdin, stdout, stderr)
}
