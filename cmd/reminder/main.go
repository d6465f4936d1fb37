package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"reminder-app/reminder/broker"
	"reminder-app/reminder/config"
	"reminder-app/reminder/database"
	"reminder-app/reminder/logging"
	"reminder-app/reminder/routes"
	"reminder-app/reminder/services"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "reminder",
		Short:         "Shared task reminders with a CRUD web UI and a kiosk display",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file; environment variables override it")

	rootCmd.AddCommand(webCmd())
	rootCmd.AddCommand(kioskCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(eventsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds everything a subcommand needs once configuration is loaded.
type app struct {
	cfg      config.Config
	logger   zerolog.Logger
	db       *database.Database
	producer broker.Producer
	services routes.Services
}

func setup() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(cfg.AppEnv)

	db, err := database.Setup(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	producer, err := broker.NewProducer(cfg.NatsURL, logger)
	if err != nil {
		// events are best-effort; run without them
		logger.Warn().Err(err).Msg("continuing without change events")
		producer = broker.NoopProducer{}
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		producer: producer,
		services: routes.Services{
			Users: services.NewUserService(producer, logger),
			Tasks: services.NewTaskService(producer, logger),
		},
	}, nil
}

func (a *app) Close() {
	a.producer.Close()
	if err := a.db.Close(); err != nil {
		a.logger.Error().Err(err).Msg("failed to close database")
	}
}
