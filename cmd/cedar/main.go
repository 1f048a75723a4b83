// Command cedar is an interactive POSIX-flavored shell: lexer, pipeline
// planner, builtin/external dispatch, raw-mode line editor with history
// recall and completion, and an optional persistent history database.
// Grounded on the shape of elvish's cmd/elvish/main.go entry point.
package main

import (
	"os"
	"path/filepath"

	"github.com/cedarsh/cedar/pkg/diag"
	"github.com/cedarsh/cedar/pkg/env"
	"github.com/cedarsh/cedar/pkg/histutil"
	"github.com/cedarsh/cedar/pkg/repl"
	"github.com/cedarsh/cedar/pkg/shellstate"
)

func main() {
	os.Exit(run())
}

func run() int {
	store := openHistoryStore()
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	st := shellstate.New(store)
	r := repl.New(os.Stdin, os.Stdout, os.Stderr, st)
	defer r.Close()

	r.Run()
	return 0
}

// openHistoryStore resolves the persistent history database path and
// opens it, falling back to an in-memory store on any failure: a
// history backend is an enrichment, never a reason to refuse to start.
func openHistoryStore() histutil.Store {
	path := historyDBPath()
	if path == "" {
		return histutil.NewMemStore()
	}

	store, err := histutil.OpenDBStore(path)
	if err != nil {
		diag.Complainf(os.Stderr, "cedar: history database %s: %s (using in-memory history)", path, err)
		return histutil.NewMemStore()
	}
	return store
}

// historyDBPath returns $CEDAR_HISTORY_DB if set, else
// <home>/.cedar/history.boltdb. Returns "" if neither is resolvable.
func historyDBPath() string {
	if p := os.Getenv(env.CedarHistDB); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".cedar", "history.boltdb")
}
