package broker

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"reminder-app/reminder/models"
)

// AllSubjects matches every event the producer publishes.
const AllSubjects = subjectPrefix + ".>"

// Handler receives decoded events.
type Handler func(subject string, event *models.Event)

type Consumer struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger zerolog.Logger
}

// StartConsumer subscribes to subjects and calls handler for each event.
// Messages that do not decode are logged and skipped.
func StartConsumer(url string, subjects []string, handler Handler, logger zerolog.Logger) (*Consumer, error) {
	conn, err := nats.Connect(url,
		nats.Name("reminder-consumer"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	c := &Consumer{conn: conn, logger: logger}
	for _, subject := range subjects {
		sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
			c.dispatch(msg.Subject, msg.Data, handler)
		})
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		c.subs = append(c.subs, sub)
	}

	logger.Info().Strs("subjects", subjects).Msg("NATS consumer started")
	return c, nil
}

func (c *Consumer) dispatch(subject string, data []byte, handler Handler) {
	var event models.Event
	if err := event.FromJSON(data); err != nil {
		c.logger.Warn().Err(err).Str("subject", subject).Msg("skipping undecodable event")
		return
	}
	handler(subject, &event)
}

func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			c.logger.Warn().Err(err).Str("subject", sub.Subject).Msg("failed to unsubscribe")
		}
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
