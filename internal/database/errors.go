package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	pgUniqueViolation    = "23505"
	mysqlUniqueViolation = 1062
)

// IsUniqueViolation reports whether err stems from a violated unique
// constraint, for the drivers this service runs against.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == pgUniqueViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlUniqueViolation
	}

	return false
}
