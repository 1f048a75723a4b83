package histutil

// NewMemStore returns a Store that keeps command history in memory only,
// for sessions with no durable history database (none configured, or
// the database failed to open). Grounded on elvish's
// pkg/cli/histutil/mem_store.go.
func NewMemStore() Store {
	return &memStore{}
}

type memStore struct {
	cmds []string
}

func (s *memStore) AllCmds() ([]string, error) {
	return s.cmds, nil
}

func (s *memStore) AddCmd(text string) (int, error) {
	s.cmds = append(s.cmds, text)
	return len(s.cmds) - 1, nil
}
