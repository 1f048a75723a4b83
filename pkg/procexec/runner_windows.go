package procexec

import (
	"io"
	"os"
	"os/exec"

	"github.com/cedarsh/cedar/pkg/plan"
)

// run launches path directly with a real argv (not a joined command
// string), since Windows has no argv[0]-override mechanism analogous to
// Unix exec -a. Redirections are captured in-process and written to
// their target files honoring truncate/append mode.
func run(cmd Command, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	c := exec.Command(path, cmd.Args...)
	c.Stdin = stdin

	outFile, outCloser, err := redirectedWriter(cmd.Redirections, plan.Stdout, stdout)
	if err != nil {
		return err
	}
	if outCloser != nil {
		defer outCloser.Close()
	}
	c.Stdout = outFile

	errFile, errCloser, err := redirectedWriter(cmd.Redirections, plan.Stderr, stderr)
	if err != nil {
		return err
	}
	if errCloser != nil {
		defer errCloser.Close()
	}
	c.Stderr = errFile

	return c.Run()
}

func redirectedWriter(redirs map[plan.Fd]plan.Redirection, fd plan.Fd, fallback io.Writer) (io.Writer, *os.File, error) {
	r, ok := redirs[fd]
	if !ok {
		return fallback, nil, nil
	}
	flag := os.O_CREATE | os.O_WRONLY
	if r.Mode == plan.Append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	f, err := os.OpenFile(r.Path, flag, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
