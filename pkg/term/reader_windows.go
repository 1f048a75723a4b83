package term

import (
	"os"

	"golang.org/x/sys/windows"
)

// Reader reads decoded key Events from the Windows console input
// buffer. Grounded on elvish's pkg/cli/term/reader_windows.go
// (ReadConsoleInput loop), simplified to the key set the line editor
// actually needs: Windows reports arrow keys as virtual-key codes
// rather than ANSI escape sequences, so no escape-sequence decoding is
// needed here.
type Reader struct {
	console windows.Handle
}

// NewReader wraps f's underlying console input handle.
func NewReader(f *os.File) *Reader {
	h, _ := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	return &Reader{console: h}
}

// ReadEvent blocks until one key event is available.
func (r *Reader) ReadEvent() (Event, error) {
	for {
		var buf [1]windows.InputRecord
		var n uint32
		err := windows.ReadConsoleInput(r.console, &buf[0], 1, &n)
		if err != nil {
			return Event{}, err
		}
		if n == 0 || buf[0].EventType != windows.KEY_EVENT {
			continue
		}
		ke := buf[0].KeyEvent
		if ke.KeyDown == 0 {
			continue
		}
		if ev, ok := decodeKeyEvent(ke); ok {
			return ev, nil
		}
	}
}

func decodeKeyEvent(ke windows.KeyEventRecord) (Event, bool) {
	switch ke.VirtualKeyCode {
	case windows.VK_RETURN:
		return Event{Key: KeyEnter}, true
	case windows.VK_BACK:
		return Event{Key: KeyBackspace}, true
	case windows.VK_TAB:
		return Event{Key: KeyTab}, true
	case windows.VK_UP:
		return Event{Key: KeyUp}, true
	case windows.VK_DOWN:
		return Event{Key: KeyDown}, true
	}
	r := rune(ke.UnicodeChar)
	if r >= 0x20 {
		return Event{Key: KeyRune, Rune: r}, true
	}
	return Event{}, false
}
