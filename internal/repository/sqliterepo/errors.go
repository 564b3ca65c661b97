package sqliterepo

import (
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/fsdevblog/club-loyal/internal/domain"
)

// convertErr приводит ошибку драйвера SQLite к ошибкам слоя репозитория, так же как это делает pgrepo.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var sqliteErr *sqlite.Error
	errType := domain.ErrUnknown

	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			errType = domain.ErrDuplicateKey
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			errType = domain.ErrInvalidAmount
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
