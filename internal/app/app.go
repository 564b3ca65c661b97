package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/club-loyal/internal/config"
	"github.com/fsdevblog/club-loyal/internal/repository/pgrepo"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/internal/repository/sqliterepo"
	"github.com/fsdevblog/club-loyal/internal/service"
	"github.com/fsdevblog/club-loyal/internal/transport/api"
	"github.com/fsdevblog/club-loyal/internal/transport/events"
	"github.com/fsdevblog/club-loyal/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)

	unitOfWork, closeStore, storeErr := a.initStore(notifyCtx)
	if storeErr != nil {
		return fmt.Errorf("app run: %s", storeErr.Error())
	}
	defer closeStore()

	services, sErr := service.Factory(unitOfWork, a.Config.Points.Schedule(), a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:        a.Logger,
		RewardService: services.RewardService,
		LedgerService: services.LedgerService,
		JWTSecretKey:  []byte(a.Config.JWTSecret),
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	errChan := make(chan error, 2) //nolint:mnd

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	if a.Config.ActivityQueueURL != "" {
		consumer, cErr := events.NewConsumer(
			a.Config.ActivityQueueURL, a.Config.ActivityQueue, a.Config.DeliveryLimit, a.Logger,
		)
		if cErr != nil {
			return fmt.Errorf("app run: %s", cErr.Error())
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				a.Logger.WithError(err).Error("close activity consumer")
			}
		}()

		deliveries, dErr := consumer.Deliveries()
		if dErr != nil {
			return fmt.Errorf("app run: %s", dErr.Error())
		}

		processor := events.New(services.RewardService, a.Logger).
			SetWorkers(a.Config.ActivityWorkers).
			SetDeliveryLimit(a.Config.DeliveryLimit)
		go processor.Run(notifyCtx, deliveries)
	}

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initStore подключает Postgres, если задан DSN, иначе встроенную SQLite базу.
func (a *App) initStore(ctx context.Context) (uow.UOW, func(), error) {
	if a.Config.DatabaseDSN != "" {
		conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
		if connErr != nil {
			return nil, nil, fmt.Errorf("init store: %w", connErr)
		}

		unitOfWork := uow.NewUnitOfWork(conn)
		factoryFn := func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPointsTransactionRepository(dbtx)
		}
		if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.PointsTransactionRepoName), factoryFn); regErr != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init store: %w", regErr)
		}
		return unitOfWork, conn.Close, nil
	}

	db, openErr := sqliterepo.Open(a.Config.SQLitePath, a.Logger)
	if openErr != nil {
		return nil, nil, fmt.Errorf("init store: %w", openErr)
	}

	unitOfWork := uow.NewSQLUnitOfWork(db)
	factoryFn := func(dbtx uow.SQLDBTX) uow.Repository {
		return sqliterepo.NewPointsTransactionRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.PointsTransactionRepoName), factoryFn); regErr != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("init store: %w", regErr)
	}
	closeFn := func() {
		if err := db.Close(); err != nil {
			a.Logger.WithError(err).Error("close sqlite")
		}
	}
	return unitOfWork, closeFn, nil
}
