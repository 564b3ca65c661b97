package domain

import (
	"time"
)

type PointsTransaction struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	MemberID       int64
	Kind           TransactionKind
	Amount         int64
	BalanceAfter   int64
	Description    string
	Activity       ActivityKind
	IdempotencyKey *string
	OrderID        *int64
	BookingID      *int64
	RelatedID      *int64
	ExpiresAt      *time.Time
}

// PointsSummary сводка по счету участника. Balance всегда вычисляется из журнала.
type PointsSummary struct {
	MemberID         int64
	TotalEarned      int64
	TotalSpent       int64
	Balance          int64
	TransactionCount int64
}

type MemberBalance struct {
	MemberID int64
	Balance  int64
}

// ExpiringPoints баллы участника, срок действия которых истекает в заданном окне.
type ExpiringPoints struct {
	MemberID      int64
	Amount        int64
	NearestExpiry time.Time
	Transactions  []PointsTransaction
}
