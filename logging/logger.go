package logging

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reminder-app/reminder/config"
)

const requestIDHeader = "X-Request-ID"

// New builds the application logger for the given environment.
func New(env string) zerolog.Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, out io.Writer) zerolog.Logger {
	zerolog.TimestampFieldName = "timestamp"

	level := zerolog.InfoLevel
	w := out
	switch env {
	case config.EnvProduction:
	case config.EnvTest:
		level = zerolog.WarnLevel
	default:
		level = zerolog.DebugLevel
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()
}

// RequestLogger logs one line per request and tags it with a request id.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
