// cmd/teamsfix/main.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/windowsadmins/teamsfix/pkg/config"
	"github.com/windowsadmins/teamsfix/pkg/logging"
	"github.com/windowsadmins/teamsfix/pkg/msiexec"
	"github.com/windowsadmins/teamsfix/pkg/remediate"
	"github.com/windowsadmins/teamsfix/pkg/version"
)

func main() {
	patchCommandLine()

	// Define command-line flags.
	configPath := pflag.String("config", "", "Path to the configuration file.")
	urlOverride := pflag.String("url", "", "Override the add-in package download URL.")
	checkOnly := pflag.Bool("checkonly", false, "Report what would be done without staging or repairing.")
	showConfig := pflag.Bool("show-config", false, "Display the current configuration and exit.")
	versionFlag := pflag.Bool("version", false, "Print the version and exit.")

	// Count the number of -v flags.
	var verbosity int
	pflag.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (e.g. -v, -vv)")
	pflag.Parse()

	if *versionFlag {
		if verbosity > 0 {
			version.PrintFull()
		} else {
			version.Print()
		}
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if *urlOverride != "" {
		cfg.DownloadURL = *urlOverride
	}
	if *checkOnly {
		cfg.CheckOnly = true
	}
	if verbosity > 0 || cfg.Verbose {
		cfg.LogLevel = "DEBUG"
	}
	logging.Init(logging.ParseLevel(cfg.LogLevel))

	if *showConfig {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			logging.Error("Failed to serialize configuration", "error", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
		os.Exit(0)
	}

	runner := remediate.New(cfg, msiexec.New())
	if err := runner.Run(); err != nil {
		logging.Error("Remediation failed", "error", err)
		os.Exit(1)
	}
	logging.Success("Remediation complete")
}
