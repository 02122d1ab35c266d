//go:build !windows
// +build !windows

package main

// patchCommandLine is Windows-only; os.Args is already correct elsewhere.
func patchCommandLine() {}
