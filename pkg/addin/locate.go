// pkg/addin/locate.go - finding the add-in folder and the installer
// package inside the extracted payload.

package addin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNoFolder is returned when the extracted payload contains no
// directory named like the Teams Meeting Add-in.
var ErrNoFolder = errors.New("no Teams Meeting Add-in folder in package")

// The add-in folder has shipped under both spellings. Case-sensitive,
// matched against the start of the name.
var folderPattern = regexp.MustCompile(`^TeamsMeetingAdd-?(in)?`)

// FindFolder scans the immediate subdirectories of extractRoot and
// returns the name of the first one (lexicographically; ReadDir sorts)
// that matches the add-in folder pattern.
func FindFolder(extractRoot string) (string, error) {
	entries, err := os.ReadDir(extractRoot)
	if err != nil {
		return "", fmt.Errorf("failed to read extraction directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() && folderPattern.MatchString(entry.Name()) {
			return entry.Name(), nil
		}
	}
	return "", ErrNoFolder
}

// FindMSI walks the extracted payload and returns the path of the first
// .msi file in lexicographic walk order, or "" when the package carries
// no installer.
func FindMSI(extractRoot string) (string, error) {
	var found string
	err := filepath.WalkDir(extractRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".msi") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan for installer package: %w", err)
	}
	return found, nil
}
