package config

const (
	defaultUICommand         = "kicadlm-ui"
	defaultIPCTimeoutSeconds = 4
	defaultLogLevel          = "info"
	defaultLogFormat         = "" // auto: console on a terminal, JSON otherwise
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		UI: UI{
			Command: defaultUICommand,
		},
		IPC: IPC{
			TimeoutSeconds: defaultIPCTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
