package database

import (
	"reminder-app/reminder/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the users and tasks tables.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	); err != nil {
		return err
	}

	if err := backfillNameKeys(db); err != nil {
		return err
	}

	// Names are unique regardless of case. lower() in SQLite folds ASCII only,
	// so the index is on the key computed in Go.
	if err := db.Exec("DROP INDEX IF EXISTS idx_users_name_lower").Error; err != nil {
		return err
	}
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_name_key ON users (name_key)").Error
}

// backfillNameKeys fills name_key for rows written before the column existed.
func backfillNameKeys(db *gorm.DB) error {
	var users []models.User
	if err := db.Where("name_key = ?", "").Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		if err := db.Model(&models.User{}).Where("id = ?", u.ID).
			UpdateColumn("name_key", models.NormalizeName(u.Name)).Error; err != nil {
			return err
		}
	}
	return nil
}
