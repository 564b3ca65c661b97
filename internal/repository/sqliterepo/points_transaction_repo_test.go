package sqliterepo

import (
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
)

type PointsTransactionRepoTestSuite struct {
	suite.Suite
	db   *sql.DB
	repo *PointsTransactionRepository
}

func TestPointsTransactionRepoSuite(t *testing.T) {
	suite.Run(t, new(PointsTransactionRepoTestSuite))
}

func (s *PointsTransactionRepoTestSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := Open(":memory:", logger)
	s.Require().NoError(err)
	s.db = db
	s.repo = NewPointsTransactionRepository(db)
}

func (s *PointsTransactionRepoTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *PointsTransactionRepoTestSuite) create(args repoargs.PointsTransactionCreate) *domain.PointsTransaction {
	t, err := s.repo.Create(s.T().Context(), args)
	s.Require().NoError(err)
	return t
}

func (s *PointsTransactionRepoTestSuite) TestCreateRoundTrip() {
	key := "birthday:2025"
	bookingID := int64(15)
	expiresAt := time.Date(2026, time.May, 1, 10, 0, 0, 123, time.FixedZone("MSK", 3*60*60))

	created := s.create(repoargs.PointsTransactionCreate{
		MemberID:       1,
		Kind:           domain.KindEarned,
		Amount:         200,
		BalanceAfter:   200,
		Description:    "Birthday bonus 2025",
		Activity:       domain.ActivityBirthday,
		IdempotencyKey: &key,
		BookingID:      &bookingID,
		ExpiresAt:      &expiresAt,
	})

	got, err := s.repo.GetByID(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Equal(created, got)
	s.Equal(domain.ActivityBirthday, got.Activity)
	s.Require().NotNil(got.IdempotencyKey)
	s.Equal(key, *got.IdempotencyKey)
	s.Nil(got.OrderID)
	s.Require().NotNil(got.BookingID)
	s.Equal(bookingID, *got.BookingID)
	s.True(got.ExpiresAt.Equal(expiresAt))
}

func (s *PointsTransactionRepoTestSuite) TestConstraints() {
	key := "first_booking"
	args := repoargs.PointsTransactionCreate{
		MemberID:       2,
		Kind:           domain.KindEarned,
		Amount:         50,
		BalanceAfter:   50,
		IdempotencyKey: &key,
	}
	s.create(args)

	_, err := s.repo.Create(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)

	// тот же ключ у другого участника допустим.
	args.MemberID = 3
	s.create(args)

	args.IdempotencyKey = nil
	args.Amount = 0
	_, err = s.repo.Create(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *PointsTransactionRepoTestSuite) TestFindByIdempotencyKey_NotFound() {
	_, err := s.repo.FindByIdempotencyKey(s.T().Context(), 1, "monthly_loyalty:2025-01")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PointsTransactionRepoTestSuite) TestUpdateClearExpiresAt() {
	expiresAt := time.Now().Add(time.Hour)
	created := s.create(repoargs.PointsTransactionCreate{
		MemberID:     4,
		Kind:         domain.KindEarned,
		Amount:       10,
		BalanceAfter: 10,
		ExpiresAt:    &expiresAt,
	})

	orderID := int64(99)
	updated, err := s.repo.Update(s.T().Context(), created.ID, repoargs.PointsTransactionUpdate{
		OrderID:        &orderID,
		ClearExpiresAt: true,
	})
	s.Require().NoError(err)
	s.Nil(updated.ExpiresAt)
	s.Require().NotNil(updated.OrderID)
	s.Equal(orderID, *updated.OrderID)
	s.Equal(created.Amount, updated.Amount)
	s.False(updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = s.repo.Update(s.T().Context(), created.ID+100, repoargs.PointsTransactionUpdate{})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PointsTransactionRepoTestSuite) TestListDateRange() {
	for i := range 3 {
		s.create(repoargs.PointsTransactionCreate{
			MemberID:     5,
			Kind:         domain.KindEarned,
			Amount:       int64(i + 1),
			BalanceAfter: int64(i + 1),
		})
	}
	from := time.Now().Add(-time.Minute)
	to := time.Now().Add(time.Minute)

	inRange, err := s.repo.List(s.T().Context(), 5, repoargs.ListFilter{From: &from, To: &to, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(inRange, 2)
	s.Equal(int64(3), inRange[0].Amount)

	past := from.Add(-time.Hour)
	none, err := s.repo.List(s.T().Context(), 5, repoargs.ListFilter{To: &past})
	s.Require().NoError(err)
	s.Empty(none)
}
