package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reminder-app/reminder/broker"
	"reminder-app/reminder/config"
	"reminder-app/reminder/logging"
	"reminder-app/reminder/models"
)

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Log change events published to NATS until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.NatsURL == "" {
				return errors.New("NATS_URL is not set")
			}
			logger := logging.New(cfg.AppEnv)

			consumer, err := broker.StartConsumer(cfg.NatsURL, []string{broker.AllSubjects}, func(subject string, event *models.Event) {
				logger.Info().
					Str("subject", subject).
					Str("event", event.Event).
					Str("event_id", event.ID.String()).
					Uint("actor_id", event.ActorID).
					RawJSON("data", event.Data).
					Msg("event")
			}, logger)
			if err != nil {
				return err
			}
			defer consumer.Close()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			return nil
		},
	}
}
