package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. GORM's TranslateError covers most cases;
// the driver checks remain for errors raised outside GORM's translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
