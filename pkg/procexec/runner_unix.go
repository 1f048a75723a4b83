//go:build unix

package procexec

import (
	"io"
	"os/exec"
	"strings"

	"github.com/cedarsh/cedar/pkg/plan"
)

// run composes `exec -a <name> <path> <args...>` (plus any per-fd file
// redirections) and launches it through /bin/sh -c, so that the child's
// argv[0] (its process-table name) can differ from the on-disk path
// used to find it. Grounded on elvish's use of os.StartProcess with
// an explicit argv[0] in pkg/eval/external_cmd.go, re-expressed as a
// shell composition.
func run(cmd Command, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	sh := buildShellCommand(cmd, path)
	c := exec.Command("/bin/sh", "-c", sh)
	c.Stdin = stdin
	c.Stdout = stdout
	c.Stderr = stderr
	return c.Run()
}

func buildShellCommand(cmd Command, path string) string {
	var b strings.Builder
	b.WriteString("exec -a ")
	b.WriteString(quote(cmd.Name))
	b.WriteByte(' ')
	b.WriteString(quote(path))
	for _, a := range cmd.Args {
		b.WriteByte(' ')
		b.WriteString(quote(a))
	}
	for _, r := range orderedRedirections(cmd.Redirections) {
		b.WriteByte(' ')
		b.WriteString(redirOperator(r))
		b.WriteByte(' ')
		b.WriteString(quote(r.Path))
	}
	return b.String()
}

// orderedRedirections returns redirections in a stable order (stdout
// before stderr) so the composed command is deterministic.
func orderedRedirections(redirs map[plan.Fd]plan.Redirection) []plan.Redirection {
	var out []plan.Redirection
	if r, ok := redirs[plan.Stdout]; ok {
		out = append(out, r)
	}
	if r, ok := redirs[plan.Stderr]; ok {
		out = append(out, r)
	}
	return out
}

func redirOperator(r plan.Redirection) string {
	switch {
	case r.Fd == plan.Stdout && r.Mode == plan.Truncate:
		return ">"
	case r.Fd == plan.Stdout && r.Mode == plan.Append:
		return ">>"
	case r.Fd == plan.Stderr && r.Mode == plan.Truncate:
		return "2>"
	default:
		return "2>>"
	}
}

// quote wraps s in single quotes, escaping embedded single quotes as
// '"'"' so the shell sees the literal value.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
