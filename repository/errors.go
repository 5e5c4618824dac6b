package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrDuplicateUser means the email is already registered.
	ErrDuplicateUser = errors.New("user with this email already exists")
	// ErrDuplicateSong means a song with the same name already exists.
	ErrDuplicateSong = errors.New("song with this name already exists")
)

// isDuplicateEntry reports whether err is a MySQL unique-key violation.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
