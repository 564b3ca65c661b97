package uow

import (
	"context"
	"database/sql"
	"errors"
)

// SQLDBTX общий интерфейс *sql.DB и *sql.Tx.
type SQLDBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLRepositoryFactory func(SQLDBTX) Repository

// SQLUnitOfWork реализация UOW поверх database/sql. Используется встраиваемым хранилищем.
type SQLUnitOfWork struct {
	db           *sql.DB
	repositories map[RepositoryName]SQLRepositoryFactory
}

func NewSQLUnitOfWork(db *sql.DB) *SQLUnitOfWork {
	return &SQLUnitOfWork{
		db:           db,
		repositories: make(map[RepositoryName]SQLRepositoryFactory),
	}
}

// Register регистрирует фабрику репозитория. Повторная регистрация возвращает ErrRepositoryAlreadyRegistered,
// пустая фабрика ErrNilFactory.
func (u *SQLUnitOfWork) Register(name RepositoryName, factory SQLRepositoryFactory) error {
	if factory == nil {
		return repoError(ErrNilFactory, name)
	}
	if _, ok := u.repositories[name]; ok {
		return repoError(ErrRepositoryAlreadyRegistered, name)
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции.
func (u *SQLUnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.db.BeginTx(ctx, nil)
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if transErr := fn(ctx, &sqlTransaction{tx: tx, repositories: u.repositories}); transErr != nil {
		return transErr
	}
	err = tx.Commit()
	return
}

// GetRepository возвращает репозиторий, работающий вне транзакции, или ErrRepositoryNotRegistered.
func (u *SQLUnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if factory, ok := u.repositories[name]; ok {
		return factory(u.db), nil
	}
	return nil, repoError(ErrRepositoryNotRegistered, name)
}

type sqlTransaction struct {
	tx           *sql.Tx
	repositories map[RepositoryName]SQLRepositoryFactory
}

func (t *sqlTransaction) Get(name RepositoryName) (Repository, error) {
	if factory, ok := t.repositories[name]; ok {
		return factory(t.tx), nil
	}
	return nil, repoError(ErrRepositoryNotRegistered, name)
}
