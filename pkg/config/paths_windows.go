//go:build windows
// +build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
)

// localAppData resolves the per-user local application data root.
// %LOCALAPPDATA% is set for normal interactive sessions; the Known
// Folder API covers stripped-down service contexts where it is not.
func localAppData() string {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir
	}
	if dir, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0); err == nil && dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return home
}
