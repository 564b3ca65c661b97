package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/logger"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/internal/service"
	"github.com/fsdevblog/club-loyal/internal/transport/api/mocks"
	"github.com/fsdevblog/club-loyal/internal/transport/api/testutils"
	"github.com/fsdevblog/club-loyal/internal/transport/api/tokens"
)

type MembersHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockReward *mocks.MockRewardServicer
	mockLedger *mocks.MockLedgerServicer
	jwtSecret  []byte
	token      string
}

func TestMembersHandlerSuite(t *testing.T) {
	suite.Run(t, new(MembersHandlerTestSuite))
}

func (s *MembersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockReward = mocks.NewMockRewardServicer(mockCtrl)
	s.mockLedger = mocks.NewMockLedgerServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.router, err = New(RouterArgs{
		Logger:        logger.New(io.Discard),
		RewardService: s.mockReward,
		LedgerService: s.mockLedger,
		JWTSecretKey:  s.jwtSecret,
	})
	s.Require().NoError(err)

	s.token, err = tokens.GenerateServiceJWT("bookings", tokens.RoleService, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
}

func (s *MembersHandlerTestSuite) request(method, url string, body []byte) *http.Response {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   reader,
	},
		testutils.WithBearer(s.token),
		testutils.WithJSON(),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = res.Body.Close() })
	return res
}

func (s *MembersHandlerTestSuite) TestUnauthorized() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/members/1/balance",
	})
	s.Require().NoError(err)
	defer res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *MembersHandlerTestSuite) TestBalance() {
	s.mockLedger.EXPECT().Summary(gomock.Any(), int64(15)).
		Return(&domain.PointsSummary{MemberID: 15, TotalEarned: 100, TotalSpent: 40, Balance: 60}, nil)

	res := s.request(http.MethodGet, RouteGroup+"/members/15/balance", nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body BalanceResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(BalanceResponse{MemberID: 15, Balance: 60}, body)
}

func (s *MembersHandlerTestSuite) TestBalance_InvalidMemberID() {
	for _, memberID := range []string{"abc", "0", "-3"} {
		res := s.request(http.MethodGet, fmt.Sprintf("%s/members/%s/balance", RouteGroup, memberID), nil)
		s.Equal(http.StatusBadRequest, res.StatusCode, memberID)
	}
}

func (s *MembersHandlerTestSuite) TestTransactions() {
	s.mockLedger.EXPECT().List(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, filter repoargs.ListFilter) ([]domain.PointsTransaction, error) {
			s.Require().NotNil(filter.Kind)
			s.Equal(domain.KindSpent, *filter.Kind)
			s.Equal(defaultTransactionsLimit, filter.Limit)
			s.Require().NotNil(filter.From)
			s.Equal(2025, filter.From.Year())
			return []domain.PointsTransaction{{ID: 1, MemberID: 3, Kind: domain.KindSpent, Amount: 5}}, nil
		})

	res := s.request(http.MethodGet, RouteGroup+"/members/3/transactions?kind=spent&from=2025-01-01T00:00:00Z", nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []TransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal(int64(5), body[0].Amount)

	res = s.request(http.MethodGet, RouteGroup+"/members/3/transactions?kind=refund", nil)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *MembersHandlerTestSuite) TestSpend() {
	orderID := int64(900)

	s.mockReward.EXPECT().Spend(gomock.Any(), service.SpendArgs{
		MemberID:    5,
		Amount:      30,
		Description: "court rent",
		Refs:        domain.References{OrderID: &orderID},
	}).Return(&domain.PointsTransaction{ID: 8, Kind: domain.KindSpent, Amount: 30, BalanceAfter: 20}, nil)
	s.mockReward.EXPECT().Spend(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: balance 20, requested 500", domain.ErrNotEnoughBalance))

	res := s.request(http.MethodPost, RouteGroup+"/members/5/spend",
		[]byte(`{"amount":30,"description":"court rent","orderId":900}`))
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+"/members/5/spend", []byte(`{"amount":500,"description":"racket"}`))
	s.Equal(http.StatusPaymentRequired, res.StatusCode)
}

func (s *MembersHandlerTestSuite) TestEarn_Validation() {
	cases := []struct {
		name string
		body string
		want int
	}{
		{name: "zero amount", body: `{"amount":0,"description":"x"}`, want: http.StatusUnprocessableEntity},
		{name: "no description", body: `{"amount":10}`, want: http.StatusUnprocessableEntity},
		{
			name: "description over bytes",
			body: fmt.Sprintf(`{"amount":10,"description":"%s"}`, testutils.GenerateOverBytesUnderRunes(200)),
			want: http.StatusUnprocessableEntity,
		},
		{name: "broken json", body: `{"amount":`, want: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, RouteGroup+"/members/5/earn", []byte(t.body))
			s.Equal(t.want, res.StatusCode)
		})
	}
}

func (s *MembersHandlerTestSuite) TestActivity() {
	gameID := int64(12)

	s.mockReward.EXPECT().AwardActivity(gomock.Any(), int64(7), domain.ActivityEvent{
		Kind:      domain.ActivityGame,
		RelatedID: &gameID,
		IsWinner:  true,
	}).Return(&domain.PointsTransaction{ID: 1, Amount: 35, Activity: domain.ActivityGame}, nil)
	s.mockReward.EXPECT().AwardActivity(gomock.Any(), int64(7), domain.ActivityEvent{Kind: domain.ActivityBirthday}).
		Return(nil, domain.NewAlreadyRewardedError(7, "birthday:2025"))

	res := s.request(http.MethodPost, RouteGroup+"/members/7/activities/game", []byte(`{"relatedId":12,"isWinner":true}`))
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+"/members/7/activities/birthday", nil)
	s.Equal(http.StatusConflict, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+"/members/7/activities/karaoke", nil)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *MembersHandlerTestSuite) TestActivities() {
	classID := int64(4)
	events := []domain.ActivityEvent{
		{Kind: domain.ActivityClassAttendance, RelatedID: &classID},
		{Kind: domain.ActivityReview},
		{Kind: domain.ActivityMonthlyLoyalty},
	}
	created := &domain.PointsTransaction{ID: 10, Amount: 15, Activity: domain.ActivityClassAttendance}

	s.mockReward.EXPECT().ProcessMultipleActivities(gomock.Any(), int64(2), events).Return(service.ActivityResults{
		{Event: events[0], Status: service.ActivityCreated, Transaction: created},
		{Event: events[1], Status: service.ActivitySkippedInvalid, Err: domain.ErrInvalidActivity},
		{Event: events[2], Status: service.ActivityFailed, Err: errors.New("db is down")},
	})

	payload := testutils.MustJSON(ActivitiesParams{Events: events})
	res := s.request(http.MethodPost, RouteGroup+"/members/2/activities", payload)
	s.Require().Equal(http.StatusMultiStatus, res.StatusCode)

	var body ActivitiesResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body.Created, 1)
	s.Equal(int64(10), body.Created[0].ID)
	s.Require().Len(body.Results, 3)
	s.Equal(service.ActivityCreated, body.Results[0].Status)
	s.Equal(service.ActivitySkippedInvalid, body.Results[1].Status)
	s.Equal(service.ActivityFailed, body.Results[2].Status)
	// детали ошибок хранилища клиенту не отдаются.
	s.Equal("internal error", body.Results[2].Error)

	res = s.request(http.MethodPost, RouteGroup+"/members/2/activities", []byte(`{"events":[]}`))
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *MembersHandlerTestSuite) TestActivity_EmptyBodyWithoutLength() {
	s.mockReward.EXPECT().AwardActivity(gomock.Any(), int64(7), domain.ActivityEvent{Kind: domain.ActivityMonthlyLoyalty}).
		Return(&domain.PointsTransaction{ID: 4, Amount: 50, Activity: domain.ActivityMonthlyLoyalty}, nil)

	// тело неизвестной длины (chunked) без содержимого.
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/members/7/activities/monthly_loyalty",
		Body:   io.NopCloser(strings.NewReader("")),
	},
		testutils.WithBearer(s.token),
		testutils.WithJSON(),
	)
	s.Require().NoError(err)
	defer res.Body.Close()
	s.Equal(http.StatusCreated, res.StatusCode)
}
