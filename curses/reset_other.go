//go:build !linux

package curses

// resetTerminalMode relies on tcell's own restore on other platforms
func resetTerminalMode() {}
