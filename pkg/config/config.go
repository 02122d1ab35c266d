// pkg/config/config.go - configuration settings for teamsfix.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDownloadURL is the published Teams Meeting Add-in package. The
// tool is designed to run with no configuration at all; everything below
// exists to override this one value and the paths derived from it.
const DefaultDownloadURL = "https://statics.teams.cdn.office.net/production-windows-x64/TeamsMeetingAddin/TeamsMeetingAddin.zip"

const ConfigPath = `C:\ProgramData\TeamsFix\Config.yaml`

// Policy registry path for enterprise overrides, mirroring the
// CSP OMA-URI layout used by our other client tools.
const PolicyRegistryPath = `SOFTWARE\TeamsFix\Config`

// Configuration holds the configurable options for teamsfix in YAML format.
type Configuration struct {
	DownloadURL     string   `yaml:"DownloadURL"`
	DestinationRoot string   `yaml:"DestinationRoot"`
	WorkspaceRoot   string   `yaml:"WorkspaceRoot"`
	BlockingApps    []string `yaml:"BlockingApps"`
	CheckOnly       bool     `yaml:"CheckOnly"`
	LogLevel        string   `yaml:"LogLevel"`
	Verbose         bool     `yaml:"Verbose"`
}

// Default returns a Configuration that performs the stock remediation:
// fetch the published package and stage it under the per-user
// <LocalAppData>\Microsoft directory.
func Default() *Configuration {
	return &Configuration{
		DownloadURL:     DefaultDownloadURL,
		DestinationRoot: filepath.Join(localAppData(), "Microsoft"),
		WorkspaceRoot:   os.TempDir(),
		BlockingApps:    []string{"ms-teams.exe", "Teams.exe", "Outlook.exe"},
		LogLevel:        "INFO",
	}
}

// LoadConfig loads the configuration from a YAML file, falling back to
// registry policy settings and then to built-in defaults. A missing file
// is not an error: the tool must be runnable with zero configuration.
func LoadConfig(path string) (*Configuration, error) {
	if path == "" {
		path = ConfigPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		applyPolicyOverrides(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills any field the YAML left empty.
func applyDefaults(cfg *Configuration) {
	def := Default()
	if cfg.DownloadURL == "" {
		cfg.DownloadURL = def.DownloadURL
	}
	if cfg.DestinationRoot == "" {
		cfg.DestinationRoot = def.DestinationRoot
	}
	if cfg.WorkspaceRoot == "" {
		cfg.WorkspaceRoot = def.WorkspaceRoot
	}
	if cfg.BlockingApps == nil {
		cfg.BlockingApps = def.BlockingApps
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

func validate(cfg *Configuration) error {
	if !strings.HasPrefix(cfg.DownloadURL, "http://") && !strings.HasPrefix(cfg.DownloadURL, "https://") {
		return fmt.Errorf("invalid DownloadURL %q: must be an http(s) URL", cfg.DownloadURL)
	}
	return nil
}
