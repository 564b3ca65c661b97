package uow

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"
)

const counterRepoName RepositoryName = "counter"

type counterRepo struct {
	db SQLDBTX
}

func (r *counterRepo) Inc(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "UPDATE counter SET value = value + 1")
	return err
}

func (r *counterRepo) Value(ctx context.Context) (int, error) {
	var v int
	err := r.db.QueryRowContext(ctx, "SELECT value FROM counter").Scan(&v)
	return v, err
}

type SQLUnitOfWorkTestSuite struct {
	suite.Suite
	db  *sql.DB
	uow *SQLUnitOfWork
}

func TestSQLUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(SQLUnitOfWorkTestSuite))
}

func (s *SQLUnitOfWorkTestSuite) SetupTest() {
	db, err := sql.Open("sqlite", ":memory:")
	s.Require().NoError(err)
	// у каждого соединения своя in-memory база.
	db.SetMaxOpenConns(1)
	_, err = db.Exec("CREATE TABLE counter (value INTEGER NOT NULL)")
	s.Require().NoError(err)
	_, err = db.Exec("INSERT INTO counter VALUES (0)")
	s.Require().NoError(err)
	s.db = db

	s.uow = NewSQLUnitOfWork(db)
	s.Require().NoError(s.uow.Register(counterRepoName, func(db SQLDBTX) Repository {
		return &counterRepo{db: db}
	}))
}

func (s *SQLUnitOfWorkTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *SQLUnitOfWorkTestSuite) TestRegister() {
	err := s.uow.Register(counterRepoName, func(db SQLDBTX) Repository { return nil })
	s.Require().ErrorIs(err, ErrRepositoryAlreadyRegistered)
	s.Contains(err.Error(), `"counter"`)

	s.ErrorIs(s.uow.Register("empty", nil), ErrNilFactory)
}

func (s *SQLUnitOfWorkTestSuite) TestGetRepositoryAs() {
	repo, err := GetRepositoryAs[*counterRepo](s.uow, counterRepoName)
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetRepositoryAs[*counterRepo](s.uow, "missing")
	s.ErrorIs(err, ErrRepositoryNotRegistered)

	_, err = GetRepositoryAs[*sql.DB](s.uow, counterRepoName)
	s.ErrorIs(err, ErrInvalidRepositoryType)
}

func (s *SQLUnitOfWorkTestSuite) TestDo_CommitAndRollback() {
	ctx := context.Background()

	err := s.uow.Do(ctx, func(ctx context.Context, tx TX) error {
		repo, gErr := GetAs[*counterRepo](tx, counterRepoName)
		if gErr != nil {
			return gErr
		}
		return repo.Inc(ctx)
	})
	s.Require().NoError(err)

	errBoom := errors.New("boom")
	err = s.uow.Do(ctx, func(ctx context.Context, tx TX) error {
		repo, gErr := GetAs[*counterRepo](tx, counterRepoName)
		if gErr != nil {
			return gErr
		}
		if incErr := repo.Inc(ctx); incErr != nil {
			return incErr
		}
		return errBoom
	})
	s.Require().ErrorIs(err, errBoom)

	err = s.uow.Do(ctx, func(_ context.Context, tx TX) error {
		_, gErr := GetAs[*sql.DB](tx, counterRepoName)
		return gErr
	})
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)

	repo, err := GetRepositoryAs[*counterRepo](s.uow, counterRepoName)
	s.Require().NoError(err)
	value, err := repo.Value(ctx)
	s.Require().NoError(err)
	s.Equal(1, value)
}
