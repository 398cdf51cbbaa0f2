package main

import (
	"os"

	"github.com/spf13/cobra"

	"rentora/internal/interfaces/cli/migrate"
	"rentora/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rentora",
		Short: "Rentora - property rental management platform",
		Long:  `Rentora manages property listings, bookings, subscriptions, staff inspections, and maintenance.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
