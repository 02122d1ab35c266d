//go:build !windows
// +build !windows

package config

// applyPolicyOverrides is a no-op off Windows; policy delivery is a
// registry mechanism.
func applyPolicyOverrides(cfg *Configuration) {}
