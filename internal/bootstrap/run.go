package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kicadlm/internal/bootlog"
	"kicadlm/internal/cachedir"
	"kicadlm/internal/config"
	"kicadlm/internal/crashtrace"
	"kicadlm/internal/deps"
	"kicadlm/internal/hostipc"
	"kicadlm/internal/instance"
	"kicadlm/internal/logging"
	"kicadlm/internal/repo"
	"kicadlm/internal/ui"
)

const notifyTitle = "KiCad Library Manager"

// Exit codes returned to the host application.
const (
	// ExitOK covers success and the graceful yield to an existing instance.
	ExitOK = 0
	// ExitNoProject covers an unreachable host and a host with no active
	// project: a recoverable-but-unsatisfied precondition.
	ExitNoProject = 1
	// ExitMissingDependency covers an absent mandatory capability.
	ExitMissingDependency = 2
)

// Options configures a bootstrap run.
type Options struct {
	ConfigPath string
	Socket     string // host API socket override
	LogLevel   string
	LogFormat  string
}

// Collaborators are the external boundaries the orchestrator hands off to.
// Nil fields are filled with the exec-based defaults built from config.
type Collaborators struct {
	Launcher ui.Launcher
	Notifier ui.Notifier
}

// Run executes the startup sequence and returns the process exit code.
func Run(ctx context.Context, opts Options, collab Collaborators) int {
	boot := bootlog.New(cachedir.BootLogPath())
	boot.Append("=== launcher start ===")
	boot.Appendf("pid=%d", os.Getpid())

	if path, err := crashtrace.Install(cachedir.CrashTracePath()); err == nil {
		boot.Appendf("crash_trace=%s", path)
	} else {
		boot.Appendf("crash trace unavailable: %v", err)
	}

	cwd, _ := os.Getwd()
	exe, _ := os.Executable()
	boot.Appendf("argv=%q", os.Args)
	boot.Appendf("cwd=%q", cwd)
	boot.Appendf("exe=%q", exe)
	boot.Appendf("KICAD_API_SOCKET=%q", hostipc.SocketPath())
	boot.Appendf("KICAD_API_TOKEN=%s", setOrMissing(hostipc.TokenPresent()))

	// Configuration trouble is advisory: fall back to defaults and keep
	// the broken file out of Save's reach.
	cfg, cfgPath, cfgExists, err := config.Load(opts.ConfigPath)
	if err != nil {
		boot.Appendf("config load failed (%v); using defaults", err)
		def := config.Default()
		cfg, cfgPath = &def, ""
	} else {
		boot.Appendf("config=%q exists=%v repo_path=%q", cfgPath, cfgExists, cfg.RepoPath)
	}

	logger, err := logging.NewFromConfig(cfg, opts.LogLevel, opts.LogFormat)
	if err != nil {
		boot.Appendf("logger init failed (%v); logging disabled", err)
		logger = logging.NewNop()
	}

	launcher := collab.Launcher
	if launcher == nil {
		launcher = ui.ExecLauncher{Command: cfg.UI.Command}
	}
	notifier := collab.Notifier
	if notifier == nil {
		notifier = ui.ExecNotifier{Command: cfg.UI.Command}
	}

	// Mandatory dependency check. Without the UI toolkit no further
	// progress is possible.
	statuses := deps.Check(deps.Defaults(cfg.UI.Command))
	for _, st := range statuses {
		boot.Appendf("dep %s (%s): available=%v %s", st.Name, st.Command, st.Available, st.Detail)
	}
	if missing := deps.FirstMissing(statuses); missing != nil {
		msg := fmt.Sprintf(
			"Missing dependency: %s (%s).\n\n%s\n\nInstall it and launch the plugin again.",
			missing.Name, missing.Command, missing.Detail)
		notifier.Notify(notifyTitle, msg)
		boot.Appendf("mandatory dependency missing: %s", missing.Name)
		return ExitMissingDependency
	}

	// One instance per user account, not per project.
	coord := &instance.Coordinator{
		LockPath:       cachedir.LockPath(),
		DescriptorPath: cachedir.DescriptorPath(),
		Log:            boot,
	}
	res, handle := coord.Ensure()
	defer handle.Release()
	if !res.Proceed {
		notifier.Notify(notifyTitle, conflictMessage(res.ConflictPID))
		boot.Append("another instance detected; exiting")
		return ExitOK
	}
	if res.Recovered {
		boot.Append("recovered stale instance lock")
	}

	// Only now may the descriptor be written (see package comment).
	instance.WriteDescriptor(coord.DescriptorPath, instance.NewDescriptor())

	socket := firstNonEmpty(opts.Socket, hostipc.SocketPath(), cfg.IPC.Socket)
	proj, err := hostipc.Handshake(socket, cfg.IPCTimeout())
	if err != nil {
		boot.Appendf("IPC handshake failed: %v", err)
		notifier.Notify(notifyTitle,
			"Could not connect to KiCad via IPC.\n\n"+
				"Make sure the IPC API server is enabled in KiCad settings.")
		return ExitNoProject
	}
	if strings.TrimSpace(proj.Path) == "" {
		boot.Append("host reports no active project")
		notifier.Notify(notifyTitle,
			"No board is open in PCB Editor.\n\n"+
				"Open a PCB in pcbnew and run the plugin again.")
		return ExitNoProject
	}
	projectDir := containingDir(proj.Path)

	hints := repo.Hints{
		ProjectPath: proj.Path,
		WorkingDir:  cwd,
		InstallDir:  filepath.Dir(exe),
	}
	repoPath := repo.Resolve(hints, &configStore{cfg: cfg, path: cfgPath})
	boot.Appendf("project_path=%q board=%q repo_path=%q", proj.Path, proj.BoardName, repoPath)
	if repoPath == "" {
		// Setup mode: the UI offers configuration instead of aborting.
		boot.Append("repo path not found; opening UI in setup mode")
	}

	logger.Info("handing off to UI", logging.Args(
		logging.String("repo", repoPath),
		logging.String("project", projectDir),
		logging.Bool("setup_mode", repoPath == ""),
	)...)
	if err := launcher.Launch(ctx, repoPath, projectDir); err != nil {
		logger.Error("UI exited with error", logging.Args(logging.Error(err))...)
		boot.Appendf("UI exited with error: %v", err)
		return ExitOK
	}
	boot.Append("UI exited")
	return ExitOK
}

func conflictMessage(pid int) string {
	msg := "KiCad Library Manager is already running.\n\n" +
		"Close the existing window before launching it again."
	if pid > 0 {
		msg += fmt.Sprintf("\n\nDetected running PID: %d", pid)
	}
	msg += "\n\nIf you can't find the window, it may be hidden in the background.\n" +
		"You can terminate it and try again."
	return msg
}

// configStore adapts config persistence to the resolver's collaborator
// contract. An empty path keeps discovery in memory only.
type configStore struct {
	cfg  *config.Config
	path string
}

func (s *configStore) RepoPath() string { return s.cfg.RepoPath }

func (s *configStore) SetRepoPath(dir string) error {
	s.cfg.RepoPath = dir
	if s.path == "" {
		return nil
	}
	return s.cfg.Save(s.path)
}

func containingDir(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	info, err := os.Stat(trimmed)
	if err != nil {
		return ""
	}
	if info.IsDir() {
		return trimmed
	}
	return filepath.Dir(trimmed)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func setOrMissing(present bool) string {
	if present {
		return "set"
	}
	return "missing"
}
