package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kicadlm/internal/cachedir"
)

func newCacheCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "Print the launcher cache directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cachedir.Dir())
		},
	}
}
