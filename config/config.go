package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv string `yaml:"app_env" env:"APP_ENV" env-default:"development"`

	DBDriver       string `yaml:"db_driver" env:"REMINDER_DB_DRIVER" env-default:"sqlite"`
	DBPath         string `yaml:"db" env:"REMINDER_DB" env-default:"reminder.sqlite3"`
	DBMaxIdleConns int    `yaml:"db_max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	DBMaxOpenConns int    `yaml:"db_max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"100"`

	SessionSecret   string `yaml:"secret" env:"REMINDER_SECRET" env-default:"dev-secret-change-me"`
	SessionTTLHours int    `yaml:"session_ttl_hours" env:"SESSION_TTL_HOURS" env-default:"720"`

	WebAddr         string        `yaml:"web_addr" env:"WEB_ADDR" env-default:":5000"`
	KioskAddr       string        `yaml:"kiosk_addr" env:"KIOSK_ADDR" env-default:":5001"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  string        `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"*"`

	KioskDefaultUser    string `yaml:"kiosk_default_user" env:"KIOSK_DEFAULT_USER"`
	KioskRefreshSeconds int    `yaml:"kiosk_refresh_seconds" env:"KIOSK_REFRESH_SECONDS" env-default:"30"`

	NatsURL string `yaml:"nats_url" env:"NATS_URL"`
}

// Load reads the configuration from the environment. When path is not empty
// the YAML file is read first and environment variables override it.
func Load(path string) (Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SessionTTL is the lifetime of the session cookie.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// RefreshInterval is the kiosk poll period; zero disables polling.
func (c Config) RefreshInterval() time.Duration {
	if c.KioskRefreshSeconds < 0 {
		return 0
	}
	return time.Duration(c.KioskRefreshSeconds) * time.Second
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}
