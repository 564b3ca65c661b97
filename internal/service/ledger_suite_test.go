package service

import (
	"database/sql"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/internal/repository/sqliterepo"
	"github.com/fsdevblog/club-loyal/pkg/uow"
)

// ledgerTestSuite сценарии сервисов поверх настоящего хранилища. Хранилище подключают наследники в SetupTest.
type ledgerTestSuite struct {
	suite.Suite
	reward  *RewardService
	ledger  *LedgerService
	now     time.Time
	nowLock sync.Mutex
}

func (s *ledgerTestSuite) initServices(unitOfWork uow.UOW, logger *logrus.Logger) {
	s.now = time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time {
		s.nowLock.Lock()
		defer s.nowLock.Unlock()
		return s.now
	}

	services, err := Factory(unitOfWork, domain.DefaultPointSchedule(), logger)
	s.Require().NoError(err)
	s.reward = services.RewardService.SetClock(clock)
	s.ledger = services.LedgerService.SetClock(clock)
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// LedgerSQLiteTestSuite гоняет сценарии на SQLite в памяти.
type LedgerSQLiteTestSuite struct {
	ledgerTestSuite
	db *sql.DB
}

func TestLedgerSQLiteSuite(t *testing.T) {
	suite.Run(t, new(LedgerSQLiteTestSuite))
}

func (s *LedgerSQLiteTestSuite) SetupTest() {
	logger := discardLogger()

	db, err := sqliterepo.Open(":memory:", logger)
	s.Require().NoError(err)
	s.db = db

	unitOfWork := uow.NewSQLUnitOfWork(db)
	s.Require().NoError(unitOfWork.Register(
		uow.RepositoryName(repoargs.PointsTransactionRepoName),
		func(conn uow.SQLDBTX) uow.Repository {
			return sqliterepo.NewPointsTransactionRepository(conn)
		},
	))
	s.initServices(unitOfWork, logger)
}

func (s *LedgerSQLiteTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *ledgerTestSuite) setNow(t time.Time) {
	s.nowLock.Lock()
	defer s.nowLock.Unlock()
	s.now = t
}

func (s *ledgerTestSuite) earn(memberID, amount int64) *domain.PointsTransaction {
	t, err := s.reward.Earn(s.T().Context(), EarnArgs{
		MemberID:    memberID,
		Amount:      amount,
		Description: gofakeit.Word(),
	})
	s.Require().NoError(err)
	return t
}

func (s *ledgerTestSuite) balance(memberID int64) int64 {
	b, err := s.ledger.Balance(s.T().Context(), memberID)
	s.Require().NoError(err)
	return b
}

func (s *ledgerTestSuite) TestEmptyMember() {
	summary, err := s.ledger.Summary(s.T().Context(), 404)
	s.Require().NoError(err)
	s.Equal(int64(0), summary.Balance)
	s.Equal(int64(0), summary.TransactionCount)
}

func (s *ledgerTestSuite) TestBalanceIsDerivedFromEntries() {
	const memberID int64 = 1

	s.earn(memberID, 100)
	s.earn(memberID, 40)
	_, err := s.reward.Spend(s.T().Context(), SpendArgs{MemberID: memberID, Amount: 30, Description: "coffee"})
	s.Require().NoError(err)
	s.earn(memberID, 5)

	summary, err := s.ledger.Summary(s.T().Context(), memberID)
	s.Require().NoError(err)
	s.Equal(int64(145), summary.TotalEarned)
	s.Equal(int64(30), summary.TotalSpent)
	s.Equal(int64(115), summary.Balance)
	s.Equal(int64(4), summary.TransactionCount)

	history, err := s.ledger.History(s.T().Context(), memberID, 2)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	// новые записи первыми, снимок баланса совпадает с агрегатом.
	s.Equal(int64(5), history[0].Amount)
	s.Equal(int64(115), history[0].BalanceAfter)
	s.Equal(domain.KindSpent, history[1].Kind)
	s.Equal(int64(110), history[1].BalanceAfter)
}

func (s *ledgerTestSuite) TestSpendExactBalance() {
	const memberID int64 = 2
	s.earn(memberID, 50)

	spent, err := s.reward.Spend(s.T().Context(), SpendArgs{MemberID: memberID, Amount: 50, Description: "x"})
	s.Require().NoError(err)
	s.Equal(int64(0), spent.BalanceAfter)

	rejected, err := s.reward.Spend(s.T().Context(), SpendArgs{MemberID: memberID, Amount: 1, Description: "y"})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	s.Nil(rejected)

	s.Equal(int64(0), s.balance(memberID))
	count, err := s.ledger.CountForMember(s.T().Context(), memberID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *ledgerTestSuite) TestGameParticipationScenario() {
	const memberID int64 = 3
	gameParticipation, gameWin := int64(10), int64(25)
	_, err := s.reward.UpdateSchedule(domain.PointScheduleUpdate{
		GameParticipation: &gameParticipation,
		GameWin:           &gameWin,
	})
	s.Require().NoError(err)

	first, err := s.reward.AwardGameParticipation(s.T().Context(), memberID, 1, false)
	s.Require().NoError(err)
	s.Equal(int64(10), first.Amount)
	s.Equal(int64(10), first.BalanceAfter)

	second, err := s.reward.AwardGameParticipation(s.T().Context(), memberID, 2, true)
	s.Require().NoError(err)
	s.Equal(int64(35), second.Amount)
	s.Equal(int64(45), second.BalanceAfter)

	// повторная доставка того же события не начисляет баллы.
	_, err = s.reward.AwardGameParticipation(s.T().Context(), memberID, 2, true)
	s.Require().ErrorIs(err, domain.ErrAlreadyRewarded)
	s.Equal(int64(45), s.balance(memberID))
}

func (s *ledgerTestSuite) TestBirthdayOncePerYear() {
	const memberID int64 = 4

	created, err := s.reward.AwardBirthday(s.T().Context(), memberID)
	s.Require().NoError(err)
	s.Require().NotNil(created.ExpiresAt)
	s.True(created.ExpiresAt.Equal(s.now.AddDate(1, 0, 0)))

	s.setNow(time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC))
	_, err = s.reward.AwardBirthday(s.T().Context(), memberID)
	s.Require().ErrorIs(err, domain.ErrAlreadyRewarded)

	s.setNow(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	_, err = s.reward.AwardBirthday(s.T().Context(), memberID)
	s.Require().NoError(err)

	count, err := s.ledger.CountForMember(s.T().Context(), memberID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *ledgerTestSuite) TestMonthlyLoyaltyOncePerMonth() {
	const memberID int64 = 5

	_, err := s.reward.AwardMonthlyLoyalty(s.T().Context(), memberID)
	s.Require().NoError(err)

	s.setNow(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC))
	_, err = s.reward.AwardMonthlyLoyalty(s.T().Context(), memberID)
	s.Require().ErrorIs(err, domain.ErrAlreadyRewarded)

	s.setNow(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	_, err = s.reward.AwardMonthlyLoyalty(s.T().Context(), memberID)
	s.Require().NoError(err)

	s.Equal(2*domain.DefaultPointSchedule().MonthlyLoyalty, s.balance(memberID))
}

func (s *ledgerTestSuite) TestFirstBookingOnceEver() {
	const memberID int64 = 6

	_, err := s.reward.AwardFirstBooking(s.T().Context(), memberID, 100)
	s.Require().NoError(err)
	_, err = s.reward.AwardFirstBooking(s.T().Context(), memberID, 101)
	s.Require().ErrorIs(err, domain.ErrAlreadyRewarded)

	count, err := s.ledger.CountForMember(s.T().Context(), memberID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *ledgerTestSuite) TestProcessMultipleActivities() {
	const memberID int64 = 7
	gameID, reviewID, newMemberID, bookingID := int64(1), int64(2), int64(70), int64(3)

	s.earn(memberID, 1)
	_, err := s.reward.AwardBirthday(s.T().Context(), memberID)
	s.Require().NoError(err)

	results := s.reward.ProcessMultipleActivities(s.T().Context(), memberID, []domain.ActivityEvent{
		{Kind: domain.ActivityGame, RelatedID: &gameID, IsWinner: true},
		{Kind: domain.ActivityReferral},
		{Kind: domain.ActivityBirthday},
		{Kind: domain.ActivityReview, RelatedID: &reviewID},
		{Kind: domain.ActivityReferral, NewMemberID: &newMemberID},
		{Kind: domain.ActivityFirstBooking, RelatedID: &bookingID},
	})

	statuses := make([]ActivityStatus, len(results))
	for i, r := range results {
		statuses[i] = r.Status
	}
	s.Equal([]ActivityStatus{
		ActivityCreated,
		ActivitySkippedInvalid,
		ActivitySkippedDuplicate,
		ActivityCreated,
		ActivityCreated,
		ActivityCreated,
	}, statuses)

	created := results.Created()
	s.Require().Len(created, 4)
	s.Equal(domain.ActivityGame, created[0].Activity)
	s.Equal(domain.ActivityReview, created[1].Activity)
	s.Equal(domain.ActivityReferral, created[2].Activity)
	s.Equal(domain.ActivityFirstBooking, created[3].Activity)
}

func (s *ledgerTestSuite) TestExpiringAndExpired() {
	const memberID int64 = 8

	soon := s.now.AddDate(0, 0, 10)
	later := s.now.AddDate(0, 0, 45)
	past := s.now.AddDate(0, 0, -1)

	for _, exp := range []time.Time{soon, later, past} {
		_, err := s.reward.Earn(s.T().Context(), EarnArgs{MemberID: memberID, Amount: 10, ExpiresAt: &exp})
		s.Require().NoError(err)
	}
	_, err := s.reward.Spend(s.T().Context(), SpendArgs{MemberID: memberID, Amount: 5})
	s.Require().NoError(err)

	expiring, err := s.ledger.ExpiringSoon(s.T().Context(), 30)
	s.Require().NoError(err)
	s.Require().Len(expiring, 1)
	s.Equal(domain.KindEarned, expiring[0].Kind)
	s.True(expiring[0].ExpiresAt.Equal(soon))

	members, err := s.ledger.MembersWithExpiringPoints(s.T().Context(), 60)
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(int64(20), members[0].Amount)
	s.True(members[0].NearestExpiry.Equal(soon))

	expired, err := s.ledger.ExpiredTransactions(s.T().Context())
	s.Require().NoError(err)
	s.Require().Len(expired, 1)
	s.True(expired[0].ExpiresAt.Equal(past))

	// просроченные баллы продолжают учитываться в балансе.
	s.Equal(int64(25), s.balance(memberID))
}

func (s *ledgerTestSuite) TestListFilterAndTop() {
	s.earn(10, 300)
	s.earn(11, 100)
	s.earn(12, 200)
	_, err := s.reward.Spend(s.T().Context(), SpendArgs{MemberID: 10, Amount: 250})
	s.Require().NoError(err)

	spentKind := domain.KindSpent
	spent, err := s.ledger.List(s.T().Context(), 10, repoargs.ListFilter{Kind: &spentKind})
	s.Require().NoError(err)
	s.Require().Len(spent, 1)
	s.Equal(int64(250), spent[0].Amount)

	page, err := s.ledger.List(s.T().Context(), 10, repoargs.ListFilter{Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(domain.KindEarned, page[0].Kind)

	top, err := s.ledger.TopMembersByBalance(s.T().Context(), 2)
	s.Require().NoError(err)
	s.Equal([]domain.MemberBalance{{MemberID: 12, Balance: 200}, {MemberID: 11, Balance: 100}}, top)

	total, err := s.ledger.Count(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(4), total)
}

func (s *ledgerTestSuite) TestUpdateAndDelete() {
	earned := s.earn(20, 10)
	spent, err := s.reward.Spend(s.T().Context(), SpendArgs{MemberID: 20, Amount: 5})
	s.Require().NoError(err)

	description := "corrected"
	expiresAt := s.now.AddDate(0, 1, 0)
	updated, err := s.ledger.Update(s.T().Context(), earned.ID, repoargs.PointsTransactionUpdate{
		Description: &description,
		ExpiresAt:   &expiresAt,
	})
	s.Require().NoError(err)
	s.Equal(description, updated.Description)
	s.Equal(earned.Amount, updated.Amount)
	s.True(updated.ExpiresAt.Equal(expiresAt))

	_, err = s.ledger.Update(s.T().Context(), spent.ID, repoargs.PointsTransactionUpdate{ExpiresAt: &expiresAt})
	s.Require().ErrorIs(err, domain.ErrInvalidUpdate)

	cleared, err := s.ledger.Update(s.T().Context(), earned.ID, repoargs.PointsTransactionUpdate{ClearExpiresAt: true})
	s.Require().NoError(err)
	s.Nil(cleared.ExpiresAt)
	s.Equal(description, cleared.Description)

	s.Require().NoError(s.ledger.Delete(s.T().Context(), spent.ID))
	s.Require().ErrorIs(s.ledger.Delete(s.T().Context(), spent.ID), domain.ErrRecordNotFound)
	_, err = s.ledger.Get(s.T().Context(), spent.ID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ledgerTestSuite) TestConcurrentSpendNeverOverdraws() {
	const memberID int64 = 30
	s.earn(memberID, 100)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded int

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.reward.Spend(s.T().Context(), SpendArgs{MemberID: memberID, Amount: 30})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(3, succeeded)
	s.Equal(int64(10), s.balance(memberID))
}

func (s *ledgerTestSuite) TestConcurrentBirthdayAwardsOnce() {
	const memberID int64 = 31

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.reward.AwardBirthday(s.T().Context(), memberID)
		}()
	}
	wg.Wait()

	count, err := s.ledger.CountForMember(s.T().Context(), memberID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *ledgerTestSuite) TestParticipationRules() {
	const memberID int64 = 21
	ctx := s.T().Context()
	schedule := domain.DefaultPointSchedule()

	tournament, err := s.reward.AwardTournamentParticipation(ctx, memberID, 5, true)
	s.Require().NoError(err)
	s.Equal(schedule.TournamentParticipation+schedule.TournamentWin, tournament.Amount)
	s.Equal(domain.ActivityTournament, tournament.Activity)

	class, err := s.reward.AwardClassAttendance(ctx, memberID, 8)
	s.Require().NoError(err)
	s.Equal(schedule.ClassAttendance, class.Amount)

	review, err := s.reward.AwardReview(ctx, memberID, 13)
	s.Require().NoError(err)
	s.Equal(schedule.Review, review.Amount)

	referral, err := s.reward.AwardReferral(ctx, memberID, 22)
	s.Require().NoError(err)
	s.Require().NotNil(referral.RelatedID)
	s.Equal(int64(22), *referral.RelatedID)

	// повторная отметка того же занятия ничего не создает.
	_, err = s.reward.AwardClassAttendance(ctx, memberID, 8)
	s.Require().ErrorIs(err, domain.ErrAlreadyRewarded)
	_, err = s.reward.AwardReferral(ctx, memberID, 22)
	s.Require().ErrorIs(err, domain.ErrAlreadyRewarded)

	_, err = s.reward.AwardReferral(ctx, memberID, memberID)
	s.Require().ErrorIs(err, domain.ErrInvalidActivity)

	want := schedule.TournamentParticipation + schedule.TournamentWin +
		schedule.ClassAttendance + schedule.Review + schedule.Referral
	s.Equal(want, s.balance(memberID))
	s.Equal(want, referral.BalanceAfter)
}

func (s *ledgerTestSuite) TestCalendarPeriodsUseUTC() {
	const memberID int64 = 31
	ctx := s.T().Context()
	newYork := time.FixedZone("EST", -5*60*60)

	// 2026-01-01 04:30 UTC, локально еще 2025 год.
	s.setNow(time.Date(2025, time.December, 31, 23, 30, 0, 0, newYork))
	first, err := s.reward.AwardBirthday(ctx, memberID)
	s.Require().NoError(err)
	s.Require().NotNil(first.IdempotencyKey)
	s.Equal("birthday:2026", *first.IdempotencyKey)

	s.setNow(time.Date(2026, time.January, 1, 10, 0, 0, 0, newYork))
	_, err = s.reward.AwardBirthday(ctx, memberID)
	s.Require().ErrorIs(err, domain.ErrAlreadyRewarded)

	monthly, err := s.reward.AwardMonthlyLoyalty(ctx, memberID)
	s.Require().NoError(err)
	s.Equal("monthly_loyalty:2026-01", *monthly.IdempotencyKey)

	count, err := s.ledger.CountForMember(ctx, memberID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}
