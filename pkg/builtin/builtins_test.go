package builtin

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cedarsh/cedar/pkg/histutil"
	"github.com/cedarsh/cedar/pkg/shellstate"
)

func newState() *shellstate.State {
	return shellstate.New(histutil.NewMemStore())
}

func run(t *testing.T, name string, argv []string, st *shellstate.State) (string, string) {
	t.Helper()
	h, ok := Lookup(name)
	if !ok {
		t.Fatalf("no builtin %q", name)
	}
	var out, errw bytes.Buffer
	if err := h(argv, nil, &out, &errw, st); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return out.String(), errw.String()
}

func TestEcho(t *testing.T) {
	out, _ := run(t, "echo", []string{"hello", "world"}, newState())
	if out != "hello world\n" {
		t.Errorf("got %q", out)
	}
}

func TestExitSetsFlag(t *testing.T) {
	st := newState()
	run(t, "exit", nil, st)
	if !st.Exit {
		t.Error("exit should set Exit flag")
	}
}

func TestTypeBuiltin(t *testing.T) {
	out, _ := run(t, "type", []string{"echo"}, newState())
	if out != "echo is a shell builtin\n" {
		t.Errorf("got %q", out)
	}
}

func TestTypeNotFound(t *testing.T) {
	out, _ := run(t, "type", []string{"nosuchcmd12345"}, newState())
	if out != "nosuchcmd12345: not found\n" {
		t.Errorf("got %q", out)
	}
}

func TestCdNoSuchDirectory(t *testing.T) {
	_, errOut := run(t, "cd", []string{"/no/such/dir"}, newState())
	want := "cd: /no/such/dir: No such file or directory\n"
	if errOut != want {
		t.Errorf("got %q, want %q", errOut, want)
	}
}

func TestHistoryListing(t *testing.T) {
	st := newState()
	st.History.Add("echo one")
	st.History.Add("echo two")
	out, _ := run(t, "history", nil, st)
	want := "    1  echo one\n    2  echo two\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestHistoryLastN(t *testing.T) {
	st := newState()
	st.History.Add("a")
	st.History.Add("b")
	st.History.Add("c")
	out, _ := run(t, "history", []string{"2"}, st)
	want := "    2  b\n    3  c\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestHistoryWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.txt")
	st := newState()
	st.History.Add("echo one")
	st.History.Add("echo two")
	run(t, "history", []string{"-w", path}, st)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "echo one\necho two\n" {
		t.Errorf("got %q", data)
	}

	st2 := newState()
	run(t, "history", []string{"-r", path}, st2)
	if st2.History.Len() != 2 {
		t.Errorf("Len() = %d, want 2", st2.History.Len())
	}
}

func TestHistoryReadMissingFile(t *testing.T) {
	st := newState()
	_, errOut := run(t, "history", []string{"-r", "/no/such/file"}, st)
	want := "history: /no/such/file: No such file or directory\n"
	if errOut != want {
		t.Errorf("got %q, want %q", errOut, want)
	}
}
