// Package procexec spawns external commands resolved through
// pkg/fsutil, with argv[0] override and file-based redirections
// applied per the shell's redirection spec.
package procexec

import (
	"fmt"
	"io"

	"github.com/cedarsh/cedar/pkg/fsutil"
	"github.com/cedarsh/cedar/pkg/plan"
)

// Command is one external invocation: Name is argv[0] exactly as typed
// (used for process-title/argv[0] purposes and for "command not found"
// diagnostics); Args are the remaining argv entries; Redirections are
// this stage's file redirections.
type Command struct {
	Name         string
	Args         []string
	Redirections map[plan.Fd]plan.Redirection
}

// Run resolves Name through fsutil.Search and spawns it, waiting for
// exit. Diagnostics ("command not found", spawn/wait failures) are
// written to stderr directly; Run itself
// never aborts the caller, so the REPL always returns to its prompt
// afterwards.
func Run(cmd Command, stdin io.Reader, stdout, stderr io.Writer) {
	path, ok := fsutil.Search(cmd.Name)
	if !ok {
		fmt.Fprintf(stderr, "%s: command not found\n", cmd.Name)
		return
	}
	if err := run(cmd, path, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error executing %s: %s\n", cmd.Name, err)
	}
}
