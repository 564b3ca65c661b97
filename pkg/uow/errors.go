package uow

import (
	"errors"
	"fmt"
)

var (
	ErrRepositoryNotRegistered     = errors.New("uow: repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("uow: repository already registered")
	ErrInvalidRepositoryType       = errors.New("uow: invalid repository type")
	ErrNilFactory                  = errors.New("uow: nil repository factory")
)

// repoError добавляет к ошибке имя репозитория, errors.Is по-прежнему срабатывает на err.
func repoError(err error, name RepositoryName) error {
	return fmt.Errorf("%w: %q", err, name)
}
