package builtin

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cedarsh/cedar/pkg/env"
	"github.com/cedarsh/cedar/pkg/fsutil"
	"github.com/cedarsh/cedar/pkg/histutil"
	"github.com/cedarsh/cedar/pkg/shellstate"
)

func echoBuiltin(argv []string, _ io.Reader, stdout, _ io.Writer, _ *shellstate.State) error {
	fmt.Fprintln(stdout, strings.Join(argv, " "))
	return nil
}

func exitBuiltin(_ []string, _ io.Reader, _, _ io.Writer, st *shellstate.State) error {
	st.Exit = true
	return nil
}

func pwdBuiltin(_ []string, _ io.Reader, stdout, _ io.Writer, _ *shellstate.State) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, wd)
	return nil
}

func cdBuiltin(argv []string, _ io.Reader, _, stderr io.Writer, _ *shellstate.State) error {
	path := strings.Join(argv, " ")
	if path == "~" {
		if home := os.Getenv(env.HOME); home != "" {
			path = home
		}
	}
	if err := os.Chdir(path); err != nil {
		fmt.Fprintf(stderr, "cd: %s: No such file or directory\n", path)
	}
	return nil
}

func typeBuiltin(argv []string, _ io.Reader, stdout, _ io.Writer, _ *shellstate.State) error {
	if len(argv) == 0 {
		return nil
	}
	name := argv[0]
	if IsBuiltin(name) {
		fmt.Fprintf(stdout, "%s is a shell builtin\n", name)
		return nil
	}
	if path, ok := fsutil.Search(name); ok {
		fmt.Fprintf(stdout, "%s is %s\n", name, path)
		return nil
	}
	fmt.Fprintf(stdout, "%s: not found\n", name)
	return nil
}

func historyBuiltin(argv []string, _ io.Reader, stdout, stderr io.Writer, st *shellstate.State) error {
	all := st.History.All()

	switch {
	case len(argv) == 0:
		printHistory(stdout, all, 1)
		return nil

	case len(argv) == 1:
		if n, err := strconv.Atoi(argv[0]); err == nil && n > 0 {
			start := len(all) - n
			if start < 0 {
				start = 0
			}
			printHistory(stdout, all[start:], start+1)
			return nil
		}

	case len(argv) == 2 && argv[0] == "-r":
		lines, err := histutil.LoadFile(argv[1])
		if err != nil {
			reportHistoryError(stderr, argv[1], err)
			return nil
		}
		for _, line := range lines {
			st.History.Add(line)
		}
		return nil

	case len(argv) == 2 && argv[0] == "-w":
		if err := histutil.SaveFile(argv[1], st.History.All()); err != nil {
			reportHistoryError(stderr, argv[1], err)
		}
		return nil
	}

	printHistory(stdout, all, 1)
	return nil
}

func printHistory(w io.Writer, entries []string, startIndex int) {
	for i, e := range entries {
		fmt.Fprintf(w, "%5d  %s\n", startIndex+i, e)
	}
}

func reportHistoryError(w io.Writer, file string, err error) {
	reason := "No such file or directory"
	if !os.IsNotExist(err) {
		reason = err.Error()
	}
	fmt.Fprintf(w, "history: %s: %s\n", file, reason)
}
