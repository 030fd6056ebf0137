// Package deps evaluates the external capabilities the launcher depends
// on before it commits to starting up. A missing mandatory requirement is
// the only startup condition severe enough to abort with a dependency
// failure: no further progress is possible without the UI toolkit.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external capability the launcher relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Defaults returns the launcher's requirements. uiCommand is the configured
// UI helper binary.
func Defaults(uiCommand string) []Requirement {
	return []Requirement{
		{
			Name:        "UI toolkit",
			Command:     uiCommand,
			Description: "graphical front end the launcher hands off to",
		},
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// FirstMissing returns the first mandatory requirement that is unavailable,
// or nil when all mandatory requirements are satisfied.
func FirstMissing(statuses []Status) *Status {
	for i := range statuses {
		if !statuses[i].Optional && !statuses[i].Available {
			return &statuses[i]
		}
	}
	return nil
}
