//go:build !windows
// +build !windows

package logging

// enableColors is a no-op off Windows; ANSI escapes work as-is.
func enableColors() {}
