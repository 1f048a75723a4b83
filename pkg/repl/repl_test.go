package repl

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/cedarsh/cedar/pkg/histutil"
	"github.com/cedarsh/cedar/pkg/shellstate"
)

// pipeInput returns a pipe *os.File pre-loaded with script (never a
// terminal, so New falls back to the plain-scanner input path).
func pipeInput(t *testing.T, script string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	go func() {
		io.WriteString(w, script)
		w.Close()
	}()
	return r
}

func TestRunEchoAndExit(t *testing.T) {
	stdin := pipeInput(t, "echo hello\nexit\n")
	var stdout, stderr bytes.Buffer
	st := shellstate.New(histutil.NewMemStore())

	r := New(stdin, &stdout, &stderr, st)
	r.Run()

	if got := stdout.String(); got != "$ hello\n$ " {
		t.Fatalf("stdout = %q", got)
	}
	if !st.Exit {
		t.Fatal("expected exit flag to be set")
	}
}

func TestRunEmptyLinesSkipped(t *testing.T) {
	stdin := pipeInput(t, "\n\necho ok\n")
	var stdout, stderr bytes.Buffer
	st := shellstate.New(histutil.NewMemStore())

	r := New(stdin, &stdout, &stderr, st)
	r.Run()

	want := "$ $ $ ok\n$ "
	if stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunEmptyPipelineStageReported(t *testing.T) {
	stdin := pipeInput(t, "echo a | | echo b\n")
	var stdout, stderr bytes.Buffer
	st := shellstate.New(histutil.NewMemStore())

	r := New(stdin, &stdout, &stderr, st)
	r.Run()

	if stderr.Len() == 0 {
		t.Fatal("expected a diagnostic for the empty pipeline stage")
	}
}

func TestRunAppendsHistory(t *testing.T) {
	stdin := pipeInput(t, "echo one\necho two\n")
	var stdout, stderr bytes.Buffer
	st := shellstate.New(histutil.NewMemStore())

	r := New(stdin, &stdout, &stderr, st)
	r.Run()

	all := st.History.All()
	if len(all) != 2 || all[0] != "echo one" || all[1] != "echo two" {
		t.Fatalf("history = %v", all)
	}
}
