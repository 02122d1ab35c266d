//go:build !windows
// +build !windows

package msiexec

import "os/exec"

func commandMsi() string {
	return "msiexec"
}

func hideConsoleWindow(cmd *exec.Cmd) {}
