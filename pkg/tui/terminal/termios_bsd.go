// ABOUTME: BSD-family termios ioctl request constants for ProcessTerminal.
// ABOUTME: TIOCSETAF drains output and flushes pending input before applying attributes.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETAF
)
