package services_test

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func uniqueViolation() error {
	return &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: "idx_users_name_key",
	}
}
