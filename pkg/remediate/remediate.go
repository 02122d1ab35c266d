// pkg/remediate/remediate.go - the Teams Meeting Add-in remediation run.

package remediate

import (
	"path/filepath"

	"github.com/windowsadmins/teamsfix/pkg/addin"
	"github.com/windowsadmins/teamsfix/pkg/config"
	"github.com/windowsadmins/teamsfix/pkg/download"
	"github.com/windowsadmins/teamsfix/pkg/extract"
	"github.com/windowsadmins/teamsfix/pkg/logging"
	"github.com/windowsadmins/teamsfix/pkg/msiexec"
	"github.com/windowsadmins/teamsfix/pkg/procs"
	"github.com/windowsadmins/teamsfix/pkg/workspace"
)

// launchFailedExitCode stands in for a real msiexec exit code when the
// process could not be launched at all, so the fallback still runs.
const launchFailedExitCode = -1

// Runner performs one remediation: download the add-in package, stage
// its folder into the destination, and repair the add-in through
// msiexec. The workspace never outlives the run.
type Runner struct {
	cfg *config.Configuration
	msi msiexec.Runner
}

// New returns a Runner using the given configuration and msiexec
// implementation.
func New(cfg *config.Configuration, msi msiexec.Runner) *Runner {
	return &Runner{cfg: cfg, msi: msi}
}

// Run executes the remediation steps in order. Any step failure aborts
// the run, but cleanup of the workspace happens on every exit path and
// its own failure is only logged.
func (r *Runner) Run() error {
	ws, err := workspace.New(r.cfg.WorkspaceRoot)
	if err != nil {
		return &WorkspaceError{Err: err}
	}
	defer func() {
		if err := ws.Cleanup(); err != nil {
			logging.Warn("Could not remove workspace", "path", ws.Root, "error", err)
		}
	}()

	if err := download.ToFile(r.cfg.DownloadURL, ws.ArchivePath()); err != nil {
		return &DownloadError{URL: r.cfg.DownloadURL, Err: err}
	}

	logging.Info("Extracting package", "archive", ws.ArchivePath())
	if err := extract.Unzip(ws.ArchivePath(), ws.ExtractDir()); err != nil {
		return &ExtractionError{Archive: ws.ArchivePath(), Err: err}
	}

	name, err := addin.FindFolder(ws.ExtractDir())
	if err != nil {
		return &NotFoundError{Dir: ws.ExtractDir(), Err: err}
	}
	logging.Info("Found add-in folder", "name", name)

	if running := procs.Running(r.cfg.BlockingApps); len(running) > 0 {
		logging.Warn("Applications using the add-in are running; files may be locked",
			"apps", running)
	}

	src := filepath.Join(ws.ExtractDir(), name)

	if r.cfg.CheckOnly {
		return r.reportOnly(ws.ExtractDir(), name)
	}

	dest, err := addin.Stage(src, r.cfg.DestinationRoot, name)
	if err != nil {
		return &StagingError{Dest: filepath.Join(r.cfg.DestinationRoot, name), Err: err}
	}
	logging.Success("Staged add-in folder", "path", dest)
	if v := addin.DetectVersion(dest); v != "" {
		logging.Info("Staged add-in payload", "version", v)
	}

	msiPath, err := addin.FindMSI(ws.ExtractDir())
	if err != nil || msiPath == "" {
		if err != nil {
			logging.Warn("Installer scan failed", "error", err)
		}
		logging.Warn("No installer package found; skipping repair")
		return nil
	}

	r.repair(msiPath)
	return nil
}

// reportOnly logs what a real run would do, touching nothing.
func (r *Runner) reportOnly(extractDir, name string) error {
	logging.Info("CheckOnly mode: would stage add-in folder",
		"destination", filepath.Join(r.cfg.DestinationRoot, name))

	msiPath, err := addin.FindMSI(extractDir)
	if err != nil || msiPath == "" {
		logging.Warn("No installer package found; no repair would be attempted")
		return nil
	}
	logging.Info("CheckOnly mode: would repair add-in", "installer", filepath.Base(msiPath))
	return nil
}

// repair runs the unattended repair and, when it fails for any reason
// (including failure to launch msiexec at all), falls back to exactly
// one interactive invocation. Whatever the fallback does is final.
func (r *Runner) repair(msiPath string) {
	logging.Info("Repairing add-in", "installer", msiPath)

	code, err := r.msi.Run(msiexec.RepairArgs(msiPath))
	if err != nil {
		logging.Warn("Failed to launch installer; treating as failed repair", "error", err)
		code = launchFailedExitCode
	}

	if code == 0 {
		logging.Success("Add-in repair completed")
		return
	}

	logging.Warn("Unattended repair failed", "exit_code", code)
	logging.Info("Retrying installer interactively")

	code, err = r.msi.Run(msiexec.InteractiveArgs(msiPath))
	switch {
	case err != nil:
		logging.Error("Failed to launch interactive installer", "error", err)
	case code != 0:
		logging.Warn("Interactive install did not complete", "exit_code", code)
	default:
		logging.Success("Interactive install completed")
	}
}
