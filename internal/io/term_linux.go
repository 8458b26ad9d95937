//go:build linux

package io

import "golang.org/x/sys/unix"

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
