package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// MaxUserNameLength is the width of the users.name column.
const MaxUserNameLength = 50

type User struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
	// NameKey is NormalizeName(Name); lookups and the unique index use it.
	NameKey   string    `gorm:"type:varchar(200);not null;default:''" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.NameKey = NormalizeName(u.Name)
	return nil
}

// NormalizeName folds a display name for case-insensitive comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
