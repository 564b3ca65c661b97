package sqliterepo

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open открывает базу SQLite по пути dbPath (":memory:" для базы в памяти) и применяет миграции.
// Пул ограничен одним соединением: все записи выполняются последовательно.
func Open(dbPath string, l *logrus.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if pingErr := db.Ping(); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", pingErr)
	}

	if migrateErr := runMigrations(db, l); migrateErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", migrateErr)
	}

	return db, nil
}

func runMigrations(db *sql.DB, l *logrus.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(l.WithField("module", "goose"))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
