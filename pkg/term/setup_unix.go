//go:build unix

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// Setup switches f (expected to be a terminal) into raw, no-echo mode:
// canonical mode and echo off, read granularity of one byte with no
// inter-byte timeout. It returns a restore func that undoes the change;
// callers must call it on every exit path. Grounded on the tearm/termios
// manipulation in elvish's pkg/sys/eunix/termios_notbsd.go and
// pkg/sys/tc.go, expressed with golang.org/x/sys/unix's termios ioctl
// wrappers instead of hand-rolled ioctl calls.
func Setup(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Iflag |= unix.ICRNL
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlSetTermios, saved)
	}, nil
}
