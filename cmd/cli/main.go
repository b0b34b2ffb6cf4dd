package main

import (
	"fmt"
	"os"

	"hostel/config"
	"hostel/shared/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.InitLogger()

	rootCmd := &cobra.Command{
		Use:   "hostel",
		Short: "Hostel front desk operations",
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.SetLogLevel(config.Get())
		},
	}

	rootCmd.AddCommand(
		migrateCmd(),
		createAdminCmd(),
		seedRoomsCmd(),
		eventsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
