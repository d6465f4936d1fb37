package broker

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"reminder-app/reminder/models"
)

// Producer publishes change events. Publishing happens after the database
// commit and never affects the outcome of the request.
type Producer interface {
	Publish(event *models.Event) error
	Close()
}

type NatsProducer struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

// NewProducer connects to NATS when url is set, otherwise it returns a
// producer that drops every event.
func NewProducer(url string, logger zerolog.Logger) (Producer, error) {
	if url == "" {
		logger.Info().Msg("NATS_URL not set, change events are disabled")
		return NoopProducer{}, nil
	}

	conn, err := nats.Connect(url,
		nats.Name("reminder"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn().Err(err).Msg("disconnected from NATS")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info().Str("url", c.ConnectedUrl()).Msg("reconnected to NATS")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info().Str("url", conn.ConnectedUrl()).Msg("NATS producer initialized")

	return &NatsProducer{conn: conn, logger: logger}, nil
}

func (p *NatsProducer) Publish(event *models.Event) error {
	data, err := event.ToJSON()
	if err != nil {
		return err
	}

	subject := SubjectFor(EventType(event.Event))
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	p.logger.Debug().Str("subject", subject).Str("event_id", event.ID.String()).Msg("published event")
	return nil
}

func (p *NatsProducer) Close() {
	if p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn().Err(err).Msg("failed to drain NATS connection")
		p.conn.Close()
	}
}

// NoopProducer discards events.
type NoopProducer struct{}

func (NoopProducer) Publish(*models.Event) error { return nil }

func (NoopProducer) Close() {}
