package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kicadlm/internal/cachedir"
	"kicadlm/internal/config"
	"kicadlm/internal/instance"
)

func newStatusCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show launcher boot artifacts and instance state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cfgPath, exists, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Cache directory", cachedir.Dir()},
				{"Config file", fmt.Sprintf("%s (exists: %s)", cfgPath, yesNo(exists))},
				{"Repository path", valueOrDash(cfg.RepoPath)},
				{"Boot log", cachedir.BootLogPath()},
				{"Lock file", fmt.Sprintf("%s (present: %s)", cachedir.LockPath(), yesNo(fileExists(cachedir.LockPath())))},
			}
			if desc := instance.ReadDescriptor(cachedir.DescriptorPath()); desc != nil {
				rows = append(rows,
					[]string{"Instance PID", fmt.Sprintf("%d (alive: %s)", desc.PID, yesNo(instance.Alive(desc.PID)))},
					[]string{"Instance executable", desc.Executable},
					[]string{"Instance started", desc.StartedAt.Format(time.RFC3339)},
					[]string{"Launch ID", valueOrDash(desc.LaunchID)},
				)
			} else {
				rows = append(rows, []string{"Instance descriptor", "absent"})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}
