package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// IsDuplicate reports whether err is a unique constraint violation, from
// either the ORM's translated error or the raw driver error.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsDuplicateConstraint reports whether err is a unique violation on one
// named constraint.
func IsDuplicateConstraint(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}
