package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrUserExists   = errors.New("user already exists")
	ErrValidation   = errors.New("validation error")
)

// Validation errors; all of them match ErrValidation with errors.Is.
var (
	ErrInvalidName        = fmt.Errorf("%w: name must be 1-50 characters", ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: description must be 1-100 characters", ErrValidation)
	ErrInvalidDueDate     = fmt.Errorf("%w: due date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: unknown status", ErrValidation)
)

// isUniqueViolation recognises unique constraint failures from both drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
