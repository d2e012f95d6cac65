//go:build linux

package curses

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode puts the controlling tty back in cooked mode.
// Works even when stdin is redirected.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	cookTermios(termios)
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}

// cookTermios sets the flags raw mode clears: echo, line editing, signal
// keys, CR-to-NL on input and output post-processing
func cookTermios(t *unix.Termios) {
	t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag |= unix.ICRNL
	t.Oflag |= unix.OPOST
}
