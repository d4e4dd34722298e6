package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrMentorNotFound = errors.New("mentor not found")
	ErrMenteeNotFound = errors.New("mentee not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation.
// The unique index on the email column is the only authority on duplicates:
// create and update never pre-check, they insert and translate this error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
