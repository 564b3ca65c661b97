package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/pkg/uow"
)

const (
	birthdayPointsTTLYears        = 1
	monthlyLoyaltyPointsTTLMonths = 6
)

// RewardService начисляет и списывает баллы участников. Каждая операция выполняется в одной транзакции
// UOW под блокировкой участника: проверка ключа идемпотентности, расчет баланса и вставка записи атомарны.
type RewardService struct {
	uow      uow.UOW
	schedule atomic.Pointer[domain.PointSchedule]
	now      func() time.Time
	l        *logrus.Entry
}

func NewRewardService(u uow.UOW, schedule domain.PointSchedule, l *logrus.Logger) (*RewardService, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	s := &RewardService{
		uow: u,
		now: time.Now,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "reward",
		}),
	}
	s.schedule.Store(&schedule)
	return s, nil
}

// SetClock подменяет источник текущего времени. От него зависят ключи периодов и сроки действия баллов.
func (r *RewardService) SetClock(now func() time.Time) *RewardService {
	r.now = now
	return r
}

// Schedule возвращает текущую таблицу начислений.
func (r *RewardService) Schedule() domain.PointSchedule {
	return *r.schedule.Load()
}

// UpdateSchedule применяет частичное обновление к текущей таблице и возвращает новую таблицу. Если итоговая
// таблица невалидна, текущая не меняется и возвращается ошибка domain.ErrInvalidSchedule.
func (r *RewardService) UpdateSchedule(upd domain.PointScheduleUpdate) (domain.PointSchedule, error) {
	for {
		current := r.schedule.Load()
		merged := current.Merge(upd)
		if err := merged.Validate(); err != nil {
			return *current, err //nolint:wrapcheck
		}
		if r.schedule.CompareAndSwap(current, &merged) {
			r.l.WithField("schedule", merged).Info("point schedule updated")
			return merged, nil
		}
	}
}

type EarnArgs struct {
	MemberID    int64
	Amount      int64
	Description string
	Refs        domain.References
	ExpiresAt   *time.Time
}

type SpendArgs struct {
	MemberID    int64
	Amount      int64
	Description string
	Refs        domain.References
}

// Earn начисляет баллы участнику. Возвращает domain.ErrInvalidAmount если сумма не положительная.
func (r *RewardService) Earn(ctx context.Context, args EarnArgs) (*domain.PointsTransaction, error) {
	return r.appendEntry(ctx, repoargs.PointsTransactionCreate{
		MemberID:    args.MemberID,
		Kind:        domain.KindEarned,
		Amount:      args.Amount,
		Description: args.Description,
		OrderID:     args.Refs.OrderID,
		BookingID:   args.Refs.BookingID,
		RelatedID:   args.Refs.RelatedID,
		ExpiresAt:   args.ExpiresAt,
	})
}

// Spend списывает баллы. Если баланс участника меньше суммы, запись не создается и возвращается
// domain.ErrNotEnoughBalance.
func (r *RewardService) Spend(ctx context.Context, args SpendArgs) (*domain.PointsTransaction, error) {
	return r.appendEntry(ctx, repoargs.PointsTransactionCreate{
		MemberID:    args.MemberID,
		Kind:        domain.KindSpent,
		Amount:      args.Amount,
		Description: args.Description,
		OrderID:     args.Refs.OrderID,
		BookingID:   args.Refs.BookingID,
		RelatedID:   args.Refs.RelatedID,
	})
}

// AwardGameParticipation начисляет баллы за игру. Победа дает одну запись на сумму участия и победы.
func (r *RewardService) AwardGameParticipation(
	ctx context.Context,
	memberID, gameID int64,
	isWinner bool,
) (*domain.PointsTransaction, error) {
	schedule := r.Schedule()
	amount, description := schedule.GameParticipation, fmt.Sprintf("Game participation #%d", gameID)
	if isWinner {
		amount += schedule.GameWin
		description = fmt.Sprintf("Game participation and win #%d", gameID)
	}
	return r.award(ctx, memberID, domain.ActivityGame, domain.RelatedKey(domain.ActivityGame, gameID),
		amount, description, domain.References{RelatedID: &gameID}, nil)
}

func (r *RewardService) AwardTournamentParticipation(
	ctx context.Context,
	memberID, tournamentID int64,
	isWinner bool,
) (*domain.PointsTransaction, error) {
	schedule := r.Schedule()
	amount := schedule.TournamentParticipation
	description := fmt.Sprintf("Tournament participation #%d", tournamentID)
	if isWinner {
		amount += schedule.TournamentWin
		description = fmt.Sprintf("Tournament participation and win #%d", tournamentID)
	}
	key := domain.RelatedKey(domain.ActivityTournament, tournamentID)
	return r.award(ctx, memberID, domain.ActivityTournament, key,
		amount, description, domain.References{RelatedID: &tournamentID}, nil)
}

func (r *RewardService) AwardClassAttendance(
	ctx context.Context,
	memberID, classID int64,
) (*domain.PointsTransaction, error) {
	key := domain.RelatedKey(domain.ActivityClassAttendance, classID)
	return r.award(ctx, memberID, domain.ActivityClassAttendance, key, r.Schedule().ClassAttendance,
		fmt.Sprintf("Class attendance #%d", classID), domain.References{RelatedID: &classID}, nil)
}

// AwardReferral начисляет баллы пригласившему участнику. Награда за одного приглашенного выдается один раз.
func (r *RewardService) AwardReferral(
	ctx context.Context,
	memberID, newMemberID int64,
) (*domain.PointsTransaction, error) {
	if newMemberID == memberID {
		return nil, fmt.Errorf("%w: member %d cannot refer itself", domain.ErrInvalidActivity, memberID)
	}
	key := domain.RelatedKey(domain.ActivityReferral, newMemberID)
	return r.award(ctx, memberID, domain.ActivityReferral, key, r.Schedule().Referral,
		fmt.Sprintf("Referral of member #%d", newMemberID), domain.References{RelatedID: &newMemberID}, nil)
}

func (r *RewardService) AwardReview(ctx context.Context, memberID, reviewID int64) (*domain.PointsTransaction, error) {
	key := domain.RelatedKey(domain.ActivityReview, reviewID)
	return r.award(ctx, memberID, domain.ActivityReview, key, r.Schedule().Review,
		fmt.Sprintf("Review #%d", reviewID), domain.References{RelatedID: &reviewID}, nil)
}

// AwardBirthday начисляет бонус ко дню рождения, не чаще раза в календарный год (по UTC). Баллы действуют год.
func (r *RewardService) AwardBirthday(ctx context.Context, memberID int64) (*domain.PointsTransaction, error) {
	now := r.now().UTC()
	expiresAt := now.AddDate(birthdayPointsTTLYears, 0, 0)
	return r.award(ctx, memberID, domain.ActivityBirthday, domain.BirthdayKey(now), r.Schedule().Birthday,
		fmt.Sprintf("Birthday bonus %d", now.Year()), domain.References{}, &expiresAt)
}

// AwardMonthlyLoyalty начисляет бонус за лояльность, не чаще раза в календарный месяц (по UTC). Баллы действуют
// полгода.
func (r *RewardService) AwardMonthlyLoyalty(ctx context.Context, memberID int64) (*domain.PointsTransaction, error) {
	now := r.now().UTC()
	expiresAt := now.AddDate(0, monthlyLoyaltyPointsTTLMonths, 0)
	return r.award(ctx, memberID, domain.ActivityMonthlyLoyalty, domain.MonthlyLoyaltyKey(now),
		r.Schedule().MonthlyLoyalty, fmt.Sprintf("Monthly loyalty bonus %s", now.Format("2006-01")),
		domain.References{}, &expiresAt)
}

// AwardFirstBooking начисляет бонус за первое бронирование. Выдается участнику один раз за все время,
// независимо от бронирования.
func (r *RewardService) AwardFirstBooking(
	ctx context.Context,
	memberID, bookingID int64,
) (*domain.PointsTransaction, error) {
	return r.award(ctx, memberID, domain.ActivityFirstBooking, domain.FirstBookingKey(), r.Schedule().FirstBooking,
		fmt.Sprintf("First booking #%d", bookingID), domain.References{BookingID: &bookingID}, nil)
}

// AwardActivity применяет правило, соответствующее виду события. Если обязательные для правила поля
// не заполнены, возвращает domain.ErrInvalidActivity.
func (r *RewardService) AwardActivity(
	ctx context.Context,
	memberID int64,
	event domain.ActivityEvent,
) (*domain.PointsTransaction, error) {
	switch event.Kind {
	case domain.ActivityBirthday:
		return r.AwardBirthday(ctx, memberID)
	case domain.ActivityMonthlyLoyalty:
		return r.AwardMonthlyLoyalty(ctx, memberID)
	case domain.ActivityReferral:
		if event.NewMemberID == nil {
			return nil, fmt.Errorf("%w: %s requires newMemberId", domain.ErrInvalidActivity, event.Kind)
		}
		return r.AwardReferral(ctx, memberID, *event.NewMemberID)
	case domain.ActivityGame, domain.ActivityTournament, domain.ActivityClassAttendance,
		domain.ActivityReview, domain.ActivityFirstBooking:
	default:
		return nil, fmt.Errorf("%w: unknown kind `%s`", domain.ErrInvalidActivity, event.Kind)
	}

	if event.RelatedID == nil {
		return nil, fmt.Errorf("%w: %s requires relatedId", domain.ErrInvalidActivity, event.Kind)
	}
	relatedID := *event.RelatedID

	switch event.Kind {
	case domain.ActivityGame:
		return r.AwardGameParticipation(ctx, memberID, relatedID, event.IsWinner)
	case domain.ActivityTournament:
		return r.AwardTournamentParticipation(ctx, memberID, relatedID, event.IsWinner)
	case domain.ActivityClassAttendance:
		return r.AwardClassAttendance(ctx, memberID, relatedID)
	case domain.ActivityReview:
		return r.AwardReview(ctx, memberID, relatedID)
	default:
		return r.AwardFirstBooking(ctx, memberID, relatedID)
	}
}

// ProcessMultipleActivities обрабатывает события по порядку. Ошибка одного события не влияет на остальные,
// итог каждого события возвращается в результате с тем же индексом.
func (r *RewardService) ProcessMultipleActivities(
	ctx context.Context,
	memberID int64,
	events []domain.ActivityEvent,
) ActivityResults {
	results := make(ActivityResults, len(events))
	for i, event := range events {
		transaction, err := r.AwardActivity(ctx, memberID, event)
		results[i] = ActivityResult{
			Event:       event,
			Status:      activityStatus(err),
			Transaction: transaction,
			Err:         err,
		}
		if results[i].Status == ActivityFailed {
			r.l.WithError(err).WithFields(logrus.Fields{
				"memberID": memberID,
				"kind":     event.Kind,
			}).Error("process activity")
		}
	}
	return results
}

func activityStatus(err error) ActivityStatus {
	switch {
	case err == nil:
		return ActivityCreated
	case errors.Is(err, domain.ErrInvalidActivity):
		return ActivitySkippedInvalid
	case errors.Is(err, domain.ErrAlreadyRewarded):
		return ActivitySkippedDuplicate
	default:
		return ActivityFailed
	}
}

func (r *RewardService) award(
	ctx context.Context,
	memberID int64,
	activity domain.ActivityKind,
	key string,
	amount int64,
	description string,
	refs domain.References,
	expiresAt *time.Time,
) (*domain.PointsTransaction, error) {
	return r.appendEntry(ctx, repoargs.PointsTransactionCreate{
		MemberID:       memberID,
		Kind:           domain.KindEarned,
		Amount:         amount,
		Description:    description,
		Activity:       activity,
		IdempotencyKey: &key,
		OrderID:        refs.OrderID,
		BookingID:      refs.BookingID,
		RelatedID:      refs.RelatedID,
		ExpiresAt:      expiresAt,
	})
}

// appendEntry добавляет запись в журнал внутри транзакции.
//
// Алгоритм работы:
//  1. Блокирует участника до конца транзакции.
//  2. Если у записи есть ключ идемпотентности и запись с таким ключом уже есть, возвращает
//     *domain.AlreadyRewardedError.
//  3. Считает баланс по журналу. Для списания проверяет, что баланса достаточно.
//  4. Вставляет запись с балансом после операции.
func (r *RewardService) appendEntry(
	ctx context.Context,
	args repoargs.PointsTransactionCreate,
) (*domain.PointsTransaction, error) {
	if args.Amount <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, args.Amount)
	}

	var created *domain.PointsTransaction
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PointsTransactionRepository](tx, uow.RepositoryName(repoargs.PointsTransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if err := repo.LockMember(c, args.MemberID); err != nil {
			return err //nolint:wrapcheck
		}

		if args.IdempotencyKey != nil {
			if err := r.checkNotRewarded(c, repo, args.MemberID, *args.IdempotencyKey); err != nil {
				return err
			}
		}

		agg, aggErr := repo.GetMemberBalance(c, args.MemberID)
		if aggErr != nil {
			return aggErr //nolint:wrapcheck
		}
		balance := agg.Balance()

		if args.Kind == domain.KindSpent {
			if balance < args.Amount {
				return fmt.Errorf("%w: balance %d, requested %d", domain.ErrNotEnoughBalance, balance, args.Amount)
			}
			args.BalanceAfter = balance - args.Amount
		} else {
			args.BalanceAfter = balance + args.Amount
		}

		transaction, createErr := repo.Create(c, args)
		if createErr != nil {
			if args.IdempotencyKey != nil && errors.Is(createErr, domain.ErrDuplicateKey) {
				return domain.NewAlreadyRewardedError(args.MemberID, *args.IdempotencyKey)
			}
			return createErr //nolint:wrapcheck
		}
		created = transaction
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrNotEnoughBalance) || errors.Is(txErr, domain.ErrAlreadyRewarded) {
			return nil, txErr
		}
		return nil, fmt.Errorf("append %s entry for member %d: %w", args.Kind, args.MemberID, txErr)
	}

	r.l.WithFields(logrus.Fields{
		"memberID":     created.MemberID,
		"kind":         created.Kind,
		"amount":       created.Amount,
		"balanceAfter": created.BalanceAfter,
		"activity":     created.Activity,
	}).Debug("ledger entry created")

	return created, nil
}

func (r *RewardService) checkNotRewarded(
	ctx context.Context,
	repo PointsTransactionRepository,
	memberID int64,
	key string,
) error {
	_, findErr := repo.FindByIdempotencyKey(ctx, memberID, key)
	if findErr == nil {
		return domain.NewAlreadyRewardedError(memberID, key)
	}
	if errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil
	}
	return findErr //nolint:wrapcheck
}
