//go:build !windows
// +build !windows

package config

import "os"

// localAppData has no real equivalent off Windows; honor the variable if
// something set it, otherwise fall back to the user cache directory so
// development machines get a sane path.
func localAppData() string {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	return os.TempDir()
}
