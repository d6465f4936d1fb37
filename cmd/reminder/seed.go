package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reminder-app/reminder/models"
	"reminder-app/reminder/services"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo users and tasks in an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.Close()

			created, err := services.Seed(a.db, a.services.Users, a.services.Tasks, models.DateOf(time.Now()))
			if err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "Seed-Daten angelegt.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Benutzer/Tasks existieren bereits, nichts zu tun.")
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			// setup migrates on open
			a, err := setup()
			if err != nil {
				return err
			}
			a.Close()
			a.logger.Info().Str("driver", a.cfg.DBDriver).Msg("schema is up to date")
			return nil
		},
	}
}
