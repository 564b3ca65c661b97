package api

import (
	"time"

	"github.com/fsdevblog/club-loyal/internal/domain"
)

type TransactionResponse struct {
	ID             int64                  `json:"id"`
	MemberID       int64                  `json:"memberId"`
	Kind           domain.TransactionKind `json:"kind"`
	Amount         int64                  `json:"amount"`
	BalanceAfter   int64                  `json:"balanceAfter"`
	Description    string                 `json:"description"`
	Activity       domain.ActivityKind    `json:"activity,omitempty"`
	IdempotencyKey *string                `json:"idempotencyKey,omitempty"`
	OrderID        *int64                 `json:"orderId,omitempty"`
	BookingID      *int64                 `json:"bookingId,omitempty"`
	RelatedID      *int64                 `json:"relatedId,omitempty"`
	ExpiresAt      *time.Time             `json:"expiresAt,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

func newTransactionResponse(t *domain.PointsTransaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:             t.ID,
		MemberID:       t.MemberID,
		Kind:           t.Kind,
		Amount:         t.Amount,
		BalanceAfter:   t.BalanceAfter,
		Description:    t.Description,
		Activity:       t.Activity,
		IdempotencyKey: t.IdempotencyKey,
		OrderID:        t.OrderID,
		BookingID:      t.BookingID,
		RelatedID:      t.RelatedID,
		ExpiresAt:      t.ExpiresAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func newTransactionsResponse(transactions []domain.PointsTransaction) []TransactionResponse {
	response := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		response[i] = *newTransactionResponse(&transactions[i])
	}
	return response
}
