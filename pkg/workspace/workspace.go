// pkg/workspace/workspace.go - the temporary working directory for one run.

package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a uniquely named temporary directory holding the
// downloaded archive and its extracted contents for the duration of one
// run. It must never outlive the run, successful or not.
type Workspace struct {
	Root string
}

// New creates a fresh workspace under baseDir (the system temp directory
// when baseDir is empty), with the archive path and extraction directory
// already prepared.
func New(baseDir string) (*Workspace, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}

	root := filepath.Join(baseDir, "teamsfix-"+uuid.NewString())
	ws := &Workspace{Root: root}

	if err := os.MkdirAll(ws.ExtractDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace %s: %w", root, err)
	}
	return ws, nil
}

// ArchivePath is where the downloaded package gets written.
func (w *Workspace) ArchivePath() string {
	return filepath.Join(w.Root, "addin.zip")
}

// ExtractDir is where the package gets expanded.
func (w *Workspace) ExtractDir() string {
	return filepath.Join(w.Root, "extract")
}

// Cleanup removes the workspace and everything under it. The error is
// returned so the caller can log it, but cleanup failure is best-effort
// and must never be treated as a run failure.
func (w *Workspace) Cleanup() error {
	return os.RemoveAll(w.Root)
}
