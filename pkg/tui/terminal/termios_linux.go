// ABOUTME: Linux termios ioctl request constants for ProcessTerminal.
// ABOUTME: TCSETSF drains output and flushes pending input before applying attributes.

//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETSF
)
