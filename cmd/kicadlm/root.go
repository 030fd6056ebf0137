package main

import (
	"github.com/spf13/cobra"

	"kicadlm/internal/bootstrap"
)

func execute(args []string) (int, error) {
	exitCode := 0
	cmd := newRootCommand(&exitCode)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return exitCode, err
	}
	return exitCode, nil
}

func newRootCommand(exitCode *int) *cobra.Command {
	var configFlag string
	var socketFlag string
	var logLevelFlag string
	var logFormatFlag string

	rootCmd := &cobra.Command{
		Use:   "kicadlm",
		Short: "KiCad Library Manager launcher",
		Long: "kicadlm is launched by KiCad as an external plugin process. It enforces a\n" +
			"single running instance per user, resolves the library repository root, and\n" +
			"hands off to the graphical front end.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			*exitCode = bootstrap.Run(cmd.Context(), bootstrap.Options{
				ConfigPath: configFlag,
				Socket:     socketFlag,
				LogLevel:   logLevelFlag,
				LogFormat:  logFormatFlag,
			}, bootstrap.Collaborators{})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "Host API socket (defaults to KICAD_API_SOCKET)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newStatusCommand(&configFlag))
	rootCmd.AddCommand(newDepsCommand(&configFlag))
	rootCmd.AddCommand(newCacheCommand())

	return rootCmd
}
