package main

import (
	"fmt"

	"hostel/config"
	"hostel/helper"

	"github.com/spf13/cobra"
)

var migrateActions = []string{"up", "down", "step-up", "drop"}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|step-up|drop]",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateActions,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := helper.Runner(config.Get(), args[0]); err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}

			return nil
		},
	}
}
