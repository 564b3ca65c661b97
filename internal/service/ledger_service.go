package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/pkg/uow"
)

// LedgerService операции чтения журнала и административная правка записей.
type LedgerService struct {
	uow  uow.UOW
	repo PointsTransactionRepository
	now  func() time.Time
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	repo, err := uow.GetRepositoryAs[PointsTransactionRepository](u,
		uow.RepositoryName(repoargs.PointsTransactionRepoName))
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:  u,
		repo: repo,
		now:  time.Now,
	}, nil
}

func (l *LedgerService) SetClock(now func() time.Time) *LedgerService {
	l.now = now
	return l
}

// Balance возвращает баланс участника. Для участника без записей баланс 0.
func (l *LedgerService) Balance(ctx context.Context, memberID int64) (int64, error) {
	agg, err := l.repo.GetMemberBalance(ctx, memberID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return agg.Balance(), nil
}

func (l *LedgerService) Summary(ctx context.Context, memberID int64) (*domain.PointsSummary, error) {
	agg, err := l.repo.GetMemberBalance(ctx, memberID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &domain.PointsSummary{
		MemberID:         memberID,
		TotalEarned:      agg.EarnedAmount,
		TotalSpent:       agg.SpentAmount,
		Balance:          agg.Balance(),
		TransactionCount: agg.Count,
	}, nil
}

// History возвращает последние limit записей участника, новые первыми.
func (l *LedgerService) History(ctx context.Context, memberID int64, limit uint) ([]domain.PointsTransaction, error) {
	return l.List(ctx, memberID, repoargs.ListFilter{Limit: limit})
}

func (l *LedgerService) List(
	ctx context.Context,
	memberID int64,
	filter repoargs.ListFilter,
) ([]domain.PointsTransaction, error) {
	transactions, err := l.repo.List(ctx, memberID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

func (l *LedgerService) Get(ctx context.Context, id int64) (*domain.PointsTransaction, error) {
	transaction, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transaction, nil
}

// ExpiringSoon возвращает начисления, срок действия которых истекает в ближайшие daysAhead дней.
func (l *LedgerService) ExpiringSoon(ctx context.Context, daysAhead int) ([]domain.PointsTransaction, error) {
	if daysAhead < 0 {
		return nil, fmt.Errorf("%w: daysAhead must not be negative, got %d", domain.ErrInvalidArgument, daysAhead)
	}
	now := l.now()
	transactions, err := l.repo.FindExpiring(ctx, now, now.AddDate(0, 0, daysAhead))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// MembersWithExpiringPoints группирует сгорающие в ближайшие daysAhead дней начисления по участникам.
// Участники упорядочены по ближайшей дате сгорания.
func (l *LedgerService) MembersWithExpiringPoints(ctx context.Context, daysAhead int) ([]domain.ExpiringPoints, error) {
	transactions, err := l.ExpiringSoon(ctx, daysAhead)
	if err != nil {
		return nil, err
	}

	byMember := make(map[int64]*domain.ExpiringPoints)
	for _, t := range transactions {
		group, ok := byMember[t.MemberID]
		if !ok {
			group = &domain.ExpiringPoints{MemberID: t.MemberID, NearestExpiry: *t.ExpiresAt}
			byMember[t.MemberID] = group
		}
		group.Amount += t.Amount
		if t.ExpiresAt.Before(group.NearestExpiry) {
			group.NearestExpiry = *t.ExpiresAt
		}
		group.Transactions = append(group.Transactions, t)
	}

	result := make([]domain.ExpiringPoints, 0, len(byMember))
	for _, group := range byMember {
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].NearestExpiry.Equal(result[j].NearestExpiry) {
			return result[i].MemberID < result[j].MemberID
		}
		return result[i].NearestExpiry.Before(result[j].NearestExpiry)
	})
	return result, nil
}

func (l *LedgerService) ExpiredTransactions(ctx context.Context) ([]domain.PointsTransaction, error) {
	transactions, err := l.repo.FindExpired(ctx, l.now())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

func (l *LedgerService) TopMembersByBalance(ctx context.Context, limit uint) ([]domain.MemberBalance, error) {
	balances, err := l.repo.TopMembersByBalance(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return balances, nil
}

func (l *LedgerService) Count(ctx context.Context) (int64, error) {
	return l.repo.Count(ctx) //nolint:wrapcheck
}

func (l *LedgerService) CountForMember(ctx context.Context, memberID int64) (int64, error) {
	return l.repo.CountForMember(ctx, memberID) //nolint:wrapcheck
}

// Update правит метаданные записи. Срок действия можно задать только начислению, иначе
// возвращается domain.ErrInvalidUpdate.
func (l *LedgerService) Update(
	ctx context.Context,
	id int64,
	args repoargs.PointsTransactionUpdate,
) (*domain.PointsTransaction, error) {
	var updated *domain.PointsTransaction
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PointsTransactionRepository](tx, uow.RepositoryName(repoargs.PointsTransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, getErr := repo.GetByID(c, id)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if args.ExpiresAt != nil && current.Kind != domain.KindEarned {
			return fmt.Errorf("%w: expiresAt can be set on earned entries only", domain.ErrInvalidUpdate)
		}

		transaction, updErr := repo.Update(c, id, args)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		updated = transaction
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("update transaction %d: %w", id, txErr)
	}
	return updated, nil
}

func (l *LedgerService) Delete(ctx context.Context, id int64) error {
	if err := l.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return nil
}
