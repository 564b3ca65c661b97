package service

import (
	"github.com/fsdevblog/club-loyal/internal/domain"
)

type ActivityStatus string

const (
	ActivityCreated          ActivityStatus = "created"
	ActivitySkippedInvalid   ActivityStatus = "skipped_invalid"
	ActivitySkippedDuplicate ActivityStatus = "skipped_duplicate"
	ActivityFailed           ActivityStatus = "failed"
)

// ActivityResult итог обработки одного события пакета. Transaction заполнен только для ActivityCreated,
// Err - для всех остальных статусов.
type ActivityResult struct {
	Event       domain.ActivityEvent
	Status      ActivityStatus
	Transaction *domain.PointsTransaction
	Err         error
}

type ActivityResults []ActivityResult

// Created возвращает созданные записи в порядке событий.
func (r ActivityResults) Created() []domain.PointsTransaction {
	created := make([]domain.PointsTransaction, 0, len(r))
	for _, res := range r {
		if res.Status == ActivityCreated && res.Transaction != nil {
			created = append(created, *res.Transaction)
		}
	}
	return created
}

// HasFailed сообщает, завершилось ли хотя бы одно событие ошибкой хранилища.
func (r ActivityResults) HasFailed() bool {
	for _, res := range r {
		if res.Status == ActivityFailed {
			return true
		}
	}
	return false
}
