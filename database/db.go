package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reminder-app/reminder/config"
)

type Database struct {
	DB     *gorm.DB
	Driver string
}

// Setup opens the configured store, applies pool limits and runs migrations.
func Setup(cfg config.Config, log zerolog.Logger) (*Database, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.AppEnv == config.EnvDevelopment {
		logLevel = logger.Info
	}
	gormLog := log.With().Str("component", "gorm").Logger()

	gormConfig := &gorm.Config{
		Logger: logger.New(&gormLog, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
		AllowGlobalUpdate: false,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("running database migrations")
	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Database{DB: db, Driver: cfg.DBDriver}, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverSQLite, "":
		return sqlite.Open(SQLiteDSN(dsn)), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// SQLiteDSN turns a file path into a DSN with foreign keys enforced.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func (d *Database) Close() error {
	if d.DB == nil {
		return nil
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
