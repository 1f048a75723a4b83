// Package builtin implements Cedar's builtin commands and the registry
// that dispatches to them under redirected streams.
package builtin

import (
	"io"
	"strings"

	"github.com/cedarsh/cedar/pkg/shellstate"
)

// Handler is a builtin command implementation. It receives its argument
// vector (tokens after argv[0]) and explicit stream sinks — never a
// global — plus the session's shared state. It runs with whatever
// stdout/stderr the caller (single-stage dispatch or the pipeline
// engine) has bound for this invocation.
type Handler func(argv []string, stdin io.Reader, stdout, stderr io.Writer, st *shellstate.State) error

// Names is the fixed builtin set, matched case-sensitively for `type`
// reporting.
var Names = []string{"echo", "exit", "quit", "type", "pwd", "cd", "history"}

var registry = map[string]Handler{
	"echo":    echoBuiltin,
	"exit":    exitBuiltin,
	"quit":    exitBuiltin,
	"pwd":     pwdBuiltin,
	"cd":      cdBuiltin,
	"type":    typeBuiltin,
	"history": historyBuiltin,
}

// IsBuiltin reports whether name (case-sensitive) is one of Names.
func IsBuiltin(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Lookup returns the handler for a command name matched
// case-insensitively against the registry, and whether one was found.
func Lookup(name string) (Handler, bool) {
	h, ok := registry[strings.ToLower(name)]
	return h, ok
}
