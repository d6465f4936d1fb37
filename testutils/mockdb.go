package testutils

import (
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reminder-app/reminder/config"
	"reminder-app/reminder/database"
	"reminder-app/reminder/models"
)

// SetupMockDB sets up a mock database connection
func SetupMockDB() (*database.Database, sqlmock.Sqlmock, func()) {
	var db *sql.DB
	var mock sqlmock.Sqlmock
	var err error

	db, mock, err = sqlmock.New()
	if err != nil {
		panic(err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	mockDB := &database.Database{
		DB:     gormDB,
		Driver: config.DriverPostgres,
	}

	close := func() {
		db.Close()
	}

	return mockDB, mock, close
}

// SetupTestDB opens a migrated in-memory sqlite database that lives for
// the duration of the test.
func SetupTestDB(t testing.TB) *database.Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to get sqlite handle: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(gormDB); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return &database.Database{DB: gormDB, Driver: config.DriverSQLite}
}

// CreateUser inserts a user directly, bypassing the service layer.
func CreateUser(t testing.TB, db *database.Database, name string) models.User {
	t.Helper()
	user := models.User{Name: name}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", name, err)
	}
	return user
}

// CreateTask inserts a task directly. Zero priority and status are
// replaced by their defaults.
func CreateTask(t testing.TB, db *database.Database, task models.Task) models.Task {
	t.Helper()
	if task.Priority == "" {
		task.Priority = models.PriorityNormal
	}
	if task.Status == "" {
		task.Status = models.StatusOpen
	}
	if task.AssigneeID == 0 {
		task.AssigneeID = task.CreatorID
	}
	if err := db.DB.Omit("Creator", "Assignee").Create(&task).Error; err != nil {
		t.Fatalf("failed to create task %q: %v", task.Description, err)
	}
	return task
}
