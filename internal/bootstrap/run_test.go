package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"kicadlm/internal/bootstrap"
	"kicadlm/internal/cachedir"
	"kicadlm/internal/hostipc"
	"kicadlm/internal/instance"
	"kicadlm/internal/testsupport"
)

type recordingLauncher struct {
	called     bool
	repoPath   string
	projectDir string
}

func (l *recordingLauncher) Launch(_ context.Context, repoPath, projectDir string) error {
	l.called = true
	l.repoPath = repoPath
	l.projectDir = projectDir
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_, message string) {
	n.messages = append(n.messages, message)
}

type fixture struct {
	configPath string
	socket     string
	launcher   *recordingLauncher
	notifier   *recordingNotifier
}

// newFixture redirects the cache dir, stubs the UI helper, and writes a
// config pointing at it. The host server is left to each test.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture relies on unix sockets and shell stubs")
	}
	testsupport.CacheDir(t)
	testsupport.StubBinary(t, "kicadlm-ui-stub")

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[ui]\ncommand = \"kicadlm-ui-stub\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &fixture{
		configPath: configPath,
		socket:     filepath.Join(t.TempDir(), "kicad.sock"),
		launcher:   &recordingLauncher{},
		notifier:   &recordingNotifier{},
	}
}

func (f *fixture) run(t *testing.T) int {
	t.Helper()
	return bootstrap.Run(context.Background(), bootstrap.Options{
		ConfigPath: f.configPath,
		Socket:     f.socket,
		LogFormat:  "json",
	}, bootstrap.Collaborators{Launcher: f.launcher, Notifier: f.notifier})
}

func TestRunResolvesAndHandsOff(t *testing.T) {
	f := newFixture(t)

	root := testsupport.MakeRepoRoot(t, t.TempDir())
	projectFile := filepath.Join(root, "widget.kicad_pro")
	if err := os.WriteFile(projectFile, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}
	testsupport.StartHostServer(t, f.socket, hostipc.ProjectResponse{Path: projectFile, BoardName: "widget"})

	if code := f.run(t); code != bootstrap.ExitOK {
		t.Fatalf("exit code = %d, want %d", code, bootstrap.ExitOK)
	}
	if !f.launcher.called {
		t.Fatal("UI launcher not invoked")
	}
	if f.launcher.repoPath != root {
		t.Errorf("repo path = %q, want %q", f.launcher.repoPath, root)
	}
	if f.launcher.projectDir != root {
		t.Errorf("project dir = %q, want %q", f.launcher.projectDir, root)
	}

	desc := instance.ReadDescriptor(cachedir.DescriptorPath())
	if desc == nil || desc.PID != os.Getpid() {
		t.Fatalf("descriptor after run = %+v, want own pid %d", desc, os.Getpid())
	}

	// First discovery persists the repo path into previously-empty config.
	data, err := os.ReadFile(f.configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), root) {
		t.Errorf("discovered repo path not persisted: %q", string(data))
	}
}

func TestRunOpensSetupModeWhenUnresolved(t *testing.T) {
	f := newFixture(t)

	bare := t.TempDir() // no sentinels anywhere above a temp dir
	projectFile := filepath.Join(bare, "widget.kicad_pro")
	if err := os.WriteFile(projectFile, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}
	testsupport.StartHostServer(t, f.socket, hostipc.ProjectResponse{Path: projectFile})

	if code := f.run(t); code != bootstrap.ExitOK {
		t.Fatalf("exit code = %d, want %d", code, bootstrap.ExitOK)
	}
	if !f.launcher.called {
		t.Fatal("UI launcher not invoked in setup mode")
	}
	if f.launcher.repoPath != "" {
		t.Errorf("repo path = %q, want empty (setup mode)", f.launcher.repoPath)
	}
	if f.launcher.projectDir != bare {
		t.Errorf("project dir = %q, want %q", f.launcher.projectDir, bare)
	}
}

func TestRunNoActiveProject(t *testing.T) {
	f := newFixture(t)
	testsupport.StartHostServer(t, f.socket, hostipc.ProjectResponse{})

	if code := f.run(t); code != bootstrap.ExitNoProject {
		t.Fatalf("exit code = %d, want %d", code, bootstrap.ExitNoProject)
	}
	if f.launcher.called {
		t.Fatal("UI launched without an active project")
	}
	if len(f.notifier.messages) == 0 {
		t.Fatal("user not notified about the missing project")
	}
}

func TestRunHandshakeFailure(t *testing.T) {
	f := newFixture(t)
	// No host server listening on the socket.

	if code := f.run(t); code != bootstrap.ExitNoProject {
		t.Fatalf("exit code = %d, want %d", code, bootstrap.ExitNoProject)
	}
	if f.launcher.called {
		t.Fatal("UI launched despite a failed handshake")
	}
}

func TestRunMissingMandatoryDependency(t *testing.T) {
	f := newFixture(t)
	if err := os.WriteFile(f.configPath, []byte("[ui]\ncommand = \"definitely-not-installed-kicadlm\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if code := f.run(t); code != bootstrap.ExitMissingDependency {
		t.Fatalf("exit code = %d, want %d", code, bootstrap.ExitMissingDependency)
	}
	if f.launcher.called {
		t.Fatal("UI launched despite a missing dependency")
	}
	if len(f.notifier.messages) == 0 {
		t.Fatal("user not notified about the missing dependency")
	}
	if desc := instance.ReadDescriptor(cachedir.DescriptorPath()); desc != nil {
		t.Errorf("descriptor written before dependency checks passed: %+v", desc)
	}
}

func TestRunYieldsToLiveInstance(t *testing.T) {
	f := newFixture(t)

	holder := flock.New(cachedir.LockPath())
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("pre-hold lock: ok=%v err=%v", ok, err)
	}
	defer holder.Unlock() //nolint:errcheck

	prev := instance.NewDescriptor() // live: this test process
	prev.Executable = "sentinel-exe"
	instance.WriteDescriptor(cachedir.DescriptorPath(), prev)

	if code := f.run(t); code != bootstrap.ExitOK {
		t.Fatalf("exit code = %d, want %d (graceful yield)", code, bootstrap.ExitOK)
	}
	if f.launcher.called {
		t.Fatal("UI launched despite a live instance")
	}
	if len(f.notifier.messages) == 0 || !strings.Contains(f.notifier.messages[0], "already running") {
		t.Fatalf("conflict notification missing: %v", f.notifier.messages)
	}

	// The loser must not overwrite the winner's descriptor.
	desc := instance.ReadDescriptor(cachedir.DescriptorPath())
	if desc == nil || desc.Executable != "sentinel-exe" {
		t.Fatalf("descriptor overwritten by yielding launch: %+v", desc)
	}
}

func TestRunRecoversFromStaleLock(t *testing.T) {
	f := newFixture(t)

	root := testsupport.MakeRepoRoot(t, t.TempDir())
	projectFile := filepath.Join(root, "widget.kicad_pro")
	if err := os.WriteFile(projectFile, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}
	testsupport.StartHostServer(t, f.socket, hostipc.ProjectResponse{Path: projectFile})

	holder := flock.New(cachedir.LockPath())
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("pre-hold lock: ok=%v err=%v", ok, err)
	}
	defer holder.Unlock() //nolint:errcheck

	stale := instance.NewDescriptor()
	stale.PID = 999999
	if instance.Alive(stale.PID) {
		t.Skipf("pid %d is unexpectedly live on this host", stale.PID)
	}
	instance.WriteDescriptor(cachedir.DescriptorPath(), stale)

	if code := f.run(t); code != bootstrap.ExitOK {
		t.Fatalf("exit code = %d, want %d", code, bootstrap.ExitOK)
	}
	if !f.launcher.called {
		t.Fatal("UI not launched after stale-lock recovery")
	}

	desc := instance.ReadDescriptor(cachedir.DescriptorPath())
	if desc == nil || desc.PID != os.Getpid() {
		t.Fatalf("descriptor after recovery = %+v, want own pid %d", desc, os.Getpid())
	}
}
