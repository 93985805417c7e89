package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pg "sourcescore/internal/adapters/postgres"
	"sourcescore/internal/config"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply store schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if cfg.Driver() != config.DriverPostgres {
				// sqlite stores migrate when opened.
				_, closeStore, err := openStore(ctx, cfg)
				if err != nil {
					return err
				}
				closeStore()
				fmt.Fprintf(cmd.OutOrStdout(), "sqlite store at %s is up to date\n", cfg.SQLitePath)
				return nil
			}

			db, err := pg.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer db.Close()
			applied, err := db.Migrate(ctx)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied migrations: %v\n", applied)
			return nil
		},
	}
}
