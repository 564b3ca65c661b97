package domain

type TransactionKind string

const (
	KindEarned TransactionKind = "earned"
	KindSpent  TransactionKind = "spent"
)

func (k TransactionKind) IsValid() bool {
	return k == KindEarned || k == KindSpent
}

// ActivityKind вид активности участника клуба, за которую начисляются баллы.
type ActivityKind string

const (
	ActivityGame            ActivityKind = "game"
	ActivityTournament      ActivityKind = "tournament"
	ActivityClassAttendance ActivityKind = "class_attendance"
	ActivityReferral        ActivityKind = "referral"
	ActivityReview          ActivityKind = "review"
	ActivityBirthday        ActivityKind = "birthday"
	ActivityMonthlyLoyalty  ActivityKind = "monthly_loyalty"
	ActivityFirstBooking    ActivityKind = "first_booking"
)

var activityKinds = map[ActivityKind]struct{}{
	ActivityGame:            {},
	ActivityTournament:      {},
	ActivityClassAttendance: {},
	ActivityReferral:        {},
	ActivityReview:          {},
	ActivityBirthday:        {},
	ActivityMonthlyLoyalty:  {},
	ActivityFirstBooking:    {},
}

func (a ActivityKind) IsValid() bool {
	_, ok := activityKinds[a]
	return ok
}

// ActivityEvent описание одной активности в пакетной обработке. Набор обязательных полей зависит от Kind:
// RelatedID для игр, турниров, занятий, отзывов и первого бронирования, NewMemberID для реферала.
type ActivityEvent struct {
	Kind        ActivityKind `json:"kind"`
	RelatedID   *int64       `json:"relatedId,omitempty"`
	IsWinner    bool         `json:"isWinner,omitempty"`
	NewMemberID *int64       `json:"newMemberId,omitempty"`
}

// References необязательные идентификаторы связанных сущностей.
type References struct {
	OrderID   *int64 `json:"orderId,omitempty"`
	BookingID *int64 `json:"bookingId,omitempty"`
	RelatedID *int64 `json:"relatedId,omitempty"`
}
