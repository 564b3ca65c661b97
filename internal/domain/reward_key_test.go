package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRewardKeys(t *testing.T) {
	now := time.Date(2025, time.February, 3, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "birthday", got: BirthdayKey(now), want: "birthday:2025"},
		{name: "monthly loyalty", got: MonthlyLoyaltyKey(now), want: "monthly_loyalty:2025-02"},
		{name: "first booking", got: FirstBookingKey(), want: "first_booking"},
		{name: "game", got: RelatedKey(ActivityGame, 42), want: "game:42"},
		{name: "referral", got: RelatedKey(ActivityReferral, 7), want: "referral:7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestAlreadyRewardedError(t *testing.T) {
	err := NewAlreadyRewardedError(3, "birthday:2025")

	assert.ErrorIs(t, err, ErrAlreadyRewarded)
	assert.False(t, errors.Is(err, ErrNotEnoughBalance))
	assert.Contains(t, err.Error(), "birthday:2025")
}

func TestRewardKeys_NonUTCClock(t *testing.T) {
	// 2025-12-31 23:30 по Нью-Йорку это уже 2026-01-01 по UTC.
	local := time.Date(2025, time.December, 31, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))

	assert.Equal(t, "birthday:2026", BirthdayKey(local))
	assert.Equal(t, "monthly_loyalty:2026-01", MonthlyLoyaltyKey(local))
}
