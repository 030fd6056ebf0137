package hostipc_test

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"kicadlm/internal/hostipc"
	"kicadlm/internal/testsupport"
)

func socketPath(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("unix domain sockets")
	}
	return filepath.Join(t.TempDir(), "kicad.sock")
}

func TestHandshakeReturnsProject(t *testing.T) {
	socket := socketPath(t)
	testsupport.StartHostServer(t, socket, hostipc.ProjectResponse{
		Path:      "/work/boards/widget/widget.kicad_pro",
		BoardName: "widget",
	})

	resp, err := hostipc.Handshake(socket, 2*time.Second)
	if err != nil {
		t.Fatalf("Handshake: %v", err)
	}
	if resp.Path != "/work/boards/widget/widget.kicad_pro" {
		t.Errorf("path = %q", resp.Path)
	}
	if resp.BoardName != "widget" {
		t.Errorf("board = %q", resp.BoardName)
	}
}

func TestHandshakeEmptyProject(t *testing.T) {
	socket := socketPath(t)
	testsupport.StartHostServer(t, socket, hostipc.ProjectResponse{})

	resp, err := hostipc.Handshake(socket, 2*time.Second)
	if err != nil {
		t.Fatalf("Handshake: %v", err)
	}
	if resp.Path != "" {
		t.Errorf("path = %q, want empty", resp.Path)
	}
}

func TestDialMissingSocket(t *testing.T) {
	socket := socketPath(t)
	if _, err := hostipc.Dial(socket, 500*time.Millisecond); err == nil {
		t.Fatal("expected dial error for a missing socket")
	}
}

func TestDialUnconfigured(t *testing.T) {
	if _, err := hostipc.Dial("  ", time.Second); err == nil {
		t.Fatal("expected error for an unconfigured socket")
	}
}

func TestEnvironmentAccessors(t *testing.T) {
	t.Setenv("KICAD_API_SOCKET", " /tmp/kicad.sock ")
	if got := hostipc.SocketPath(); got != "/tmp/kicad.sock" {
		t.Errorf("SocketPath = %q", got)
	}

	t.Setenv("KICAD_API_TOKEN", "")
	if hostipc.TokenPresent() {
		t.Error("TokenPresent = true with empty token")
	}
	t.Setenv("KICAD_API_TOKEN", "secret")
	if !hostipc.TokenPresent() {
		t.Error("TokenPresent = false with token set")
	}
}
