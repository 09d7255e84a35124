// Package mysql implements the repository interfaces on MySQL through sqlx.
package mysql

import (
	"database/sql"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"bizreview/internal/repository"
)

// MySQL server error numbers the repositories translate.
const (
	errDupEntry         = 1062
	errNoReferencedRow  = 1452
	errNoReferencedRow2 = 1216
)

// wrapDB adapts a database/sql pool for sqlx without reopening it.
func wrapDB(db *sql.DB) *sqlx.DB {
	return sqlx.NewDb(db, "mysql")
}

// translate maps driver errors onto repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var me *mysqldriver.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDupEntry:
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, me.Message)
		case errNoReferencedRow, errNoReferencedRow2:
			return fmt.Errorf("%w: %s", repository.ErrReferenceNotFound, me.Message)
		}
	}
	return err
}
