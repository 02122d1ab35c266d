// pkg/addin/stage.go - placing the add-in folder into the destination.

package addin

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/windowsadmins/teamsfix/pkg/logging"
)

// Stage copies the add-in folder src into destRoot/<name>, replacing any
// existing installation wholesale: an existing destination folder is
// deleted before the copy, never merged. Partial copies are not rolled
// back. Returns the destination path.
func Stage(src, destRoot, name string) (string, error) {
	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destRoot, err)
	}

	dest := filepath.Join(destRoot, name)
	if _, err := os.Stat(dest); err == nil {
		logging.Info("Removing existing add-in folder", "path", dest)
		if err := os.RemoveAll(dest); err != nil {
			return "", fmt.Errorf("failed to remove existing folder %s: %w", dest, err)
		}
	}

	if err := copyDir(src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// copyDir recursively copies src to dest, including empty directories.
func copyDir(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()|0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", dest, err)
	}
	return nil
}
