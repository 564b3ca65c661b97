package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/club-loyal/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup              = "/api"
	MemberBalanceRoute      = "/members/:memberID/balance"
	MemberSummaryRoute      = "/members/:memberID/summary"
	MemberTransactionsRoute = "/members/:memberID/transactions"
	MemberEarnRoute         = "/members/:memberID/earn"
	MemberSpendRoute        = "/members/:memberID/spend"
	MemberActivitiesRoute   = "/members/:memberID/activities"
	MemberActivityRoute     = "/members/:memberID/activities/:kind"
	PointsExpiringRoute     = "/points/expiring"
	PointsExpiredRoute      = "/points/expired"
	PointsTopRoute          = "/points/top"
	ConfigRoute             = "/config"
	TransactionRoute        = "/transactions/:id"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	RewardService RewardServicer
	LedgerService LedgerServicer
	JWTSecretKey  []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	membersHandler := NewMembersHandler(args.RewardService, args.LedgerService)
	pointsHandler := NewPointsHandler(args.LedgerService)
	configHandler := NewConfigHandler(args.RewardService)
	transactionsHandler := NewTransactionsHandler(args.LedgerService)

	api := r.Group(RouteGroup)
	// все роуты группы требуют авторизованного клиента.
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))

	api.GET(MemberBalanceRoute, membersHandler.Balance)
	api.GET(MemberSummaryRoute, membersHandler.Summary)
	api.GET(MemberTransactionsRoute, membersHandler.Transactions)
	api.POST(MemberEarnRoute, membersHandler.Earn)
	api.POST(MemberSpendRoute, membersHandler.Spend)
	api.POST(MemberActivitiesRoute, membersHandler.Activities)
	api.POST(MemberActivityRoute, membersHandler.Activity)

	api.GET(PointsExpiringRoute, pointsHandler.Expiring)
	api.GET(PointsExpiredRoute, pointsHandler.Expired)
	api.GET(PointsTopRoute, pointsHandler.Top)

	api.GET(ConfigRoute, configHandler.Show)
	api.GET(TransactionRoute, transactionsHandler.Show)

	admin := api.Group("", middlewares.AdminRequired())
	admin.PATCH(ConfigRoute, configHandler.Update)
	admin.PATCH(TransactionRoute, transactionsHandler.Update)
	admin.DELETE(TransactionRoute, transactionsHandler.Delete)

	return r, nil
}
