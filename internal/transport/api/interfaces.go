package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/internal/service"
)

type RewardServicer interface {
	Earn(ctx context.Context, args service.EarnArgs) (*domain.PointsTransaction, error)
	Spend(ctx context.Context, args service.SpendArgs) (*domain.PointsTransaction, error)
	AwardActivity(ctx context.Context, memberID int64, event domain.ActivityEvent) (*domain.PointsTransaction, error)
	ProcessMultipleActivities(
		ctx context.Context,
		memberID int64,
		events []domain.ActivityEvent,
	) service.ActivityResults
	Schedule() domain.PointSchedule
	UpdateSchedule(upd domain.PointScheduleUpdate) (domain.PointSchedule, error)
}

type LedgerServicer interface {
	Summary(ctx context.Context, memberID int64) (*domain.PointsSummary, error)
	List(ctx context.Context, memberID int64, filter repoargs.ListFilter) ([]domain.PointsTransaction, error)
	Get(ctx context.Context, id int64) (*domain.PointsTransaction, error)
	MembersWithExpiringPoints(ctx context.Context, daysAhead int) ([]domain.ExpiringPoints, error)
	ExpiredTransactions(ctx context.Context) ([]domain.PointsTransaction, error)
	TopMembersByBalance(ctx context.Context, limit uint) ([]domain.MemberBalance, error)
	Update(ctx context.Context, id int64, args repoargs.PointsTransactionUpdate) (*domain.PointsTransaction, error)
	Delete(ctx context.Context, id int64) error
}
