// Package shellstate holds the small bag of mutable state shared by a
// Cedar session: the shell-exit flag and the history handle. Builtins
// receive a *State explicitly; nothing here is a package-level global.
package shellstate

import "github.com/cedarsh/cedar/pkg/histutil"

// State is the session-wide state a builtin handler may read or mutate.
// Cwd is not tracked here: it is delegated to the host process (os.Getwd
// / os.Chdir); cwd is owned by the host process, not this struct.
type State struct {
	History *histutil.History
	Exit    bool
}

// New returns a fresh State backed by the given history store.
func New(store histutil.Store) *State {
	return &State{History: histutil.NewHistory(store)}
}
