// pkg/remediate/errors.go - the error taxonomy for one remediation run.

package remediate

import "fmt"

// WorkspaceError means the temporary workspace could not be created.
type WorkspaceError struct {
	Err error
}

func (e *WorkspaceError) Error() string {
	return fmt.Sprintf("workspace setup failed: %v", e.Err)
}

func (e *WorkspaceError) Unwrap() error { return e.Err }

// DownloadError means the package archive could not be fetched or
// written.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of %s failed: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ExtractionError means the downloaded archive could not be expanded.
type ExtractionError struct {
	Archive string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction of %s failed: %v", e.Archive, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// NotFoundError means the extracted payload contains no add-in folder,
// which aborts the run before any staging.
type NotFoundError struct {
	Dir string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no add-in folder found under %s: %v", e.Dir, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// StagingError means deleting the old installation or copying the new
// one failed. Partial copies are not rolled back.
type StagingError struct {
	Dest string
	Err  error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("staging to %s failed: %v", e.Dest, e.Err)
}

func (e *StagingError) Unwrap() error { return e.Err }
