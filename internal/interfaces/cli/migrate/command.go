package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"rentora/internal/infrastructure/config"
	"rentora/internal/infrastructure/database"
	"rentora/internal/infrastructure/persistence/migrations"
	"rentora/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back, or inspect the embedded database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			return migrations.Up(database.Get(), log)
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			return migrations.Down(database.Get(), steps, log)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			version, err := migrations.Version(database.Get())
			if err != nil {
				return err
			}

			log.Infow("current schema version", "version", version)
			return nil
		},
	}
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}
