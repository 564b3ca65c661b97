package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/pkg/uow"
)

type AppServices struct {
	RewardService *RewardService
	LedgerService *LedgerService
}

func Factory(unitOfWork uow.UOW, schedule domain.PointSchedule, l *logrus.Logger) (*AppServices, error) {
	rewardService, rewardServiceErr := NewRewardService(unitOfWork, schedule, l)
	if rewardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", rewardServiceErr)
	}

	ledgerService, ledgerServiceErr := NewLedgerService(unitOfWork)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", ledgerServiceErr)
	}

	return &AppServices{
		RewardService: rewardService,
		LedgerService: ledgerService,
	}, nil
}
