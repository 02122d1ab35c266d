// pkg/addin/version.go - reporting which add-in build got staged.

package addin

import (
	"os"

	goversion "github.com/hashicorp/go-version"
)

// DetectVersion inspects the staged add-in folder for versioned payload
// subdirectories (the package lays its binaries out under directories
// like 1.0.18012.2) and returns the newest one, or "" when none parse.
func DetectVersion(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var newest *goversion.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := goversion.NewVersion(entry.Name())
		if err != nil {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}

	if newest == nil {
		return ""
	}
	return newest.Original()
}
