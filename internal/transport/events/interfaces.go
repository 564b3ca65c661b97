package events

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/service"
)

type Servicer interface {
	ProcessMultipleActivities(ctx context.Context, memberID int64, events []domain.ActivityEvent) service.ActivityResults
}
