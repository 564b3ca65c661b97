package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrAlreadyRewarded  = errors.New("already rewarded")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidActivity  = errors.New("invalid activity")
	ErrInvalidSchedule  = errors.New("invalid point schedule")
	ErrInvalidUpdate    = errors.New("invalid transaction update")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// AlreadyRewardedError возвращается правилом начисления, когда награда за период уже выдана.
// Сравнивается через errors.Is с ErrAlreadyRewarded.
type AlreadyRewardedError struct {
	MemberID       int64
	IdempotencyKey string
}

func NewAlreadyRewardedError(memberID int64, key string) error {
	return &AlreadyRewardedError{MemberID: memberID, IdempotencyKey: key}
}

func (e *AlreadyRewardedError) Error() string {
	return fmt.Sprintf("reward `%s` already granted to member %d", e.IdempotencyKey, e.MemberID)
}

func (e *AlreadyRewardedError) Unwrap() error {
	return ErrAlreadyRewarded
}
