package domain

import (
	"fmt"
	"time"
)

// Ключи идемпотентности правил начисления. Уникальность пары (member_id, idempotency_key)
// гарантируется хранилищем. Календарные периоды считаются по UTC.

func BirthdayKey(now time.Time) string {
	return fmt.Sprintf("%s:%04d", ActivityBirthday, now.UTC().Year())
}

func MonthlyLoyaltyKey(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("%s:%04d-%02d", ActivityMonthlyLoyalty, now.Year(), int(now.Month()))
}

func FirstBookingKey() string {
	return string(ActivityFirstBooking)
}

// RelatedKey ключ для правил, привязанных к конкретной сущности (игра, турнир, занятие, отзыв, приглашенный).
func RelatedKey(kind ActivityKind, relatedID int64) string {
	return fmt.Sprintf("%s:%d", kind, relatedID)
}
