//go:build windows
// +build windows

package msiexec

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

func commandMsi() string {
	return filepath.Join(os.Getenv("WINDIR"), "system32", "msiexec.exe")
}

func hideConsoleWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
	}
}
