// pkg/procs/procs.go - checking for applications that hold the add-in
// folder open.

package procs

import (
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/windowsadmins/teamsfix/pkg/logging"
)

// Running returns which of the given executable names currently have a
// running process, case-insensitively. Enumeration failures are logged
// and treated as "none running": this check only feeds a warning and
// must never block the remediation.
func Running(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	procs, err := process.Processes()
	if err != nil {
		logging.Debug("Failed to get process list", "error", err)
		return nil
	}

	want := make(map[string]string, len(names))
	for _, name := range names {
		want[strings.ToLower(name)] = name
	}

	seen := make(map[string]bool)
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		if original, ok := want[strings.ToLower(name)]; ok {
			seen[original] = true
		}
	}

	running := make([]string, 0, len(seen))
	for name := range seen {
		running = append(running, name)
	}
	sort.Strings(running)
	return running
}
