//go:build windows

package io

import "golang.org/x/sys/windows"

// IsTerminal reports whether fd refers to a console
func IsTerminal(fd uintptr) bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(fd), &mode)
	return err == nil
}
