// Package term reads raw, single-key terminal input for the line editor:
// printable runes, Enter, Backspace, Tab, and the arrow keys, decoded
// from a raw-mode file descriptor. Grounded on elvish's
// pkg/cli/term (reader_unix.go/file_reader_unix.go for the read loop,
// pkg/sys/eunix + pkg/sys/tc for termios) and pkg/cli/term/setup_windows.go
// for the Windows console-mode equivalent.
package term

// Key identifies the kind of key event decoded from raw input.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyEOF
)

// Event is one decoded keypress. Rune is meaningful only when Key ==
// KeyRune.
type Event struct {
	Key  Key
	Rune rune
}
