package term

import (
	"os"

	"golang.org/x/sys/windows"
)

// Setup switches the console attached to f into raw-ish key-event mode
// (no line input, no echo) and returns a restore func. Grounded on the
// teacher's pkg/cli/term/setup_windows.go.
func Setup(f *os.File) (restore func() error, err error) {
	h := windows.Handle(f.Fd())

	var oldMode uint32
	if err := windows.GetConsoleMode(h, &oldMode); err != nil {
		return nil, err
	}

	newMode := oldMode &^ (windows.ENABLE_ECHO_INPUT |
		windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT)
	if err := windows.SetConsoleMode(h, newMode); err != nil {
		return nil, err
	}

	return func() error {
		return windows.SetConsoleMode(h, oldMode)
	}, nil
}
