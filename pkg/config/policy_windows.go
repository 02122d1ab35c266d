//go:build windows
// +build windows

package config

import (
	"golang.org/x/sys/windows/registry"
)

// applyPolicyOverrides overlays values pushed through the policy
// registry key onto cfg. Absence of the key, or of any value under it,
// leaves the defaults untouched.
func applyPolicyOverrides(cfg *Configuration) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, PolicyRegistryPath, registry.READ)
	if err != nil {
		return
	}
	defer key.Close()

	loadStringFromRegistry(key, "DownloadURL", &cfg.DownloadURL)
	loadStringFromRegistry(key, "DestinationRoot", &cfg.DestinationRoot)
	loadStringFromRegistry(key, "LogLevel", &cfg.LogLevel)
}

// loadStringFromRegistry reads a single string value, keeping the
// existing target when the value is missing or empty.
func loadStringFromRegistry(key registry.Key, name string, target *string) {
	if value, _, err := key.GetStringValue(name); err == nil && value != "" {
		*target = value
	}
}
