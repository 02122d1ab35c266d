// pkg/msiexec/msiexec.go - invoking the Windows Installer.

package msiexec

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/windowsadmins/teamsfix/pkg/logging"
)

// Runner executes msiexec with the given arguments, waits for it to
// finish, and returns its exit code. The error is non-nil only when the
// process could not be launched at all; a nonzero exit code comes back
// with a nil error.
type Runner interface {
	Run(args []string) (int, error)
}

// RepairArgs builds the arguments for an unattended full repair of the
// given package: no UI, no reboot.
func RepairArgs(msiPath string) []string {
	return []string{"/fa", msiPath, "/quiet", "/norestart"}
}

// InteractiveArgs builds the arguments for a normal interactive install
// of the given package.
func InteractiveArgs(msiPath string) []string {
	return []string{"/i", msiPath}
}

// Exec is the real Runner backed by the system msiexec.exe.
type Exec struct {
	// Path to the msiexec binary; defaults to the system32 copy.
	Path string
}

// New returns a Runner using the system msiexec.
func New() *Exec {
	return &Exec{Path: commandMsi()}
}

// Run launches msiexec synchronously with a hidden console window.
func (e *Exec) Run(args []string) (int, error) {
	cmd := exec.Command(e.Path, args...)
	hideConsoleWindow(cmd)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	logging.Debug("Invoking msiexec", "path", e.Path, "args", args)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Debug("msiexec returned nonzero",
			"exit_code", exitErr.ExitCode(), "stderr", stderr.String())
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
