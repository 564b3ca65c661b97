package service

import (
	"context"
	"time"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// PointsTransactionRepository журнал баллов. Реализации: pgrepo и sqliterepo.
type PointsTransactionRepository interface {
	LockMember(ctx context.Context, memberID int64) error
	Create(ctx context.Context, args repoargs.PointsTransactionCreate) (*domain.PointsTransaction, error)
	GetByID(ctx context.Context, id int64) (*domain.PointsTransaction, error)
	FindByIdempotencyKey(ctx context.Context, memberID int64, key string) (*domain.PointsTransaction, error)
	List(ctx context.Context, memberID int64, filter repoargs.ListFilter) ([]domain.PointsTransaction, error)
	GetMemberBalance(ctx context.Context, memberID int64) (*repoargs.BalanceAggregation, error)
	FindExpiring(ctx context.Context, from, to time.Time) ([]domain.PointsTransaction, error)
	FindExpired(ctx context.Context, now time.Time) ([]domain.PointsTransaction, error)
	TopMembersByBalance(ctx context.Context, limit uint) ([]domain.MemberBalance, error)
	Count(ctx context.Context) (int64, error)
	CountForMember(ctx context.Context, memberID int64) (int64, error)
	Update(ctx context.Context, id int64, args repoargs.PointsTransactionUpdate) (*domain.PointsTransaction, error)
	Delete(ctx context.Context, id int64) error
}
