package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kicadlm/internal/config"
	"kicadlm/internal/deps"
)

func newDepsCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			statuses := deps.Check(deps.Defaults(cfg.UI.Command))
			rows := make([][]string, 0, len(statuses))
			for _, st := range statuses {
				detail := st.Detail
				if detail == "" {
					detail = st.Description
				}
				rows = append(rows, []string{st.Name, st.Command, yesNo(st.Available), detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Dependency", "Command", "Available", "Detail"}, rows))

			if missing := deps.FirstMissing(statuses); missing != nil {
				return fmt.Errorf("mandatory dependency %s is unavailable: %s", missing.Name, missing.Detail)
			}
			return nil
		},
	}
}
