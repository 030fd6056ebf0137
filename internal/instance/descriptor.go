package instance

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// Descriptor identifies a running launcher instance. Its contents are
// advisory: they aid post-mortem debugging and stale-lock recovery, never
// application logic that must be correct.
type Descriptor struct {
	PID        int       `json:"pid"`
	Executable string    `json:"exe"`
	WorkingDir string    `json:"cwd"`
	Args       []string  `json:"argv"`
	APISocket  string    `json:"kicad_api_socket,omitempty"`
	LaunchID   string    `json:"launch_id,omitempty"`
	StartedAt  time.Time `json:"started_at"`
}

// NewDescriptor captures the current process.
func NewDescriptor() Descriptor {
	exe, _ := os.Executable()
	cwd, _ := os.Getwd()
	return Descriptor{
		PID:        os.Getpid(),
		Executable: exe,
		WorkingDir: cwd,
		Args:       append([]string(nil), os.Args...),
		APISocket:  os.Getenv("KICAD_API_SOCKET"),
		LaunchID:   uuid.NewString(),
		StartedAt:  time.Now().UTC(),
	}
}

// WriteDescriptor persists desc at path, replacing any previous record.
// Errors are discarded. Callers must only write after the single-instance
// check has passed; an earlier write would make the current launch look
// stale to the next one.
func WriteDescriptor(path string, desc Descriptor) {
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadDescriptor loads the descriptor at path. A missing file, malformed
// payload, or non-positive process id all yield nil.
func ReadDescriptor(path string) *Descriptor {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var desc Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil
	}
	if desc.PID <= 0 {
		return nil
	}
	return &desc
}
