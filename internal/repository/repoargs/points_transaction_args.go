package repoargs

import (
	"time"

	"github.com/fsdevblog/club-loyal/internal/domain"
)

type PointsTransactionCreate struct {
	MemberID       int64
	Kind           domain.TransactionKind
	Amount         int64
	BalanceAfter   int64
	Description    string
	Activity       domain.ActivityKind
	IdempotencyKey *string
	OrderID        *int64
	BookingID      *int64
	RelatedID      *int64
	ExpiresAt      *time.Time
}

// PointsTransactionUpdate административная правка метаданных записи. Вид и сумма операции сюда
// намеренно не входят: от них зависят все агрегаты журнала.
type PointsTransactionUpdate struct {
	Description    *string
	OrderID        *int64
	BookingID      *int64
	ExpiresAt      *time.Time
	ClearExpiresAt bool
}

// ListFilter фильтр выборки журнала участника. Пустые поля не участвуют в условии.
type ListFilter struct {
	Kind   *domain.TransactionKind
	From   *time.Time
	To     *time.Time
	Limit  uint
	Offset uint
}

type BalanceAggregation struct {
	EarnedAmount int64
	SpentAmount  int64
	Count        int64
}

func (b BalanceAggregation) Balance() int64 {
	return b.EarnedAmount - b.SpentAmount
}
