package domain

import "fmt"

// PointSchedule таблица начисления баллов за активности. Значение неизменяемое: Merge возвращает новую таблицу.
type PointSchedule struct {
	GameParticipation       int64 `json:"gameParticipation"`
	GameWin                 int64 `json:"gameWin"`
	TournamentParticipation int64 `json:"tournamentParticipation"`
	TournamentWin           int64 `json:"tournamentWin"`
	ClassAttendance         int64 `json:"classAttendance"`
	Referral                int64 `json:"referral"`
	Review                  int64 `json:"review"`
	Birthday                int64 `json:"birthday"`
	MonthlyLoyalty          int64 `json:"monthlyLoyalty"`
	FirstBooking            int64 `json:"firstBooking"`
}

// PointScheduleUpdate частичное обновление таблицы. nil поля сохраняют прежнее значение.
type PointScheduleUpdate struct {
	GameParticipation       *int64 `json:"gameParticipation,omitempty"`
	GameWin                 *int64 `json:"gameWin,omitempty"`
	TournamentParticipation *int64 `json:"tournamentParticipation,omitempty"`
	TournamentWin           *int64 `json:"tournamentWin,omitempty"`
	ClassAttendance         *int64 `json:"classAttendance,omitempty"`
	Referral                *int64 `json:"referral,omitempty"`
	Review                  *int64 `json:"review,omitempty"`
	Birthday                *int64 `json:"birthday,omitempty"`
	MonthlyLoyalty          *int64 `json:"monthlyLoyalty,omitempty"`
	FirstBooking            *int64 `json:"firstBooking,omitempty"`
}

func DefaultPointSchedule() PointSchedule {
	return PointSchedule{
		GameParticipation:       10,
		GameWin:                 25,
		TournamentParticipation: 50,
		TournamentWin:           100,
		ClassAttendance:         15,
		Referral:                100,
		Review:                  20,
		Birthday:                200,
		MonthlyLoyalty:          50,
		FirstBooking:            50,
	}
}

func (s PointSchedule) Merge(u PointScheduleUpdate) PointSchedule {
	merged := s
	mergeValue(&merged.GameParticipation, u.GameParticipation)
	mergeValue(&merged.GameWin, u.GameWin)
	mergeValue(&merged.TournamentParticipation, u.TournamentParticipation)
	mergeValue(&merged.TournamentWin, u.TournamentWin)
	mergeValue(&merged.ClassAttendance, u.ClassAttendance)
	mergeValue(&merged.Referral, u.Referral)
	mergeValue(&merged.Review, u.Review)
	mergeValue(&merged.Birthday, u.Birthday)
	mergeValue(&merged.MonthlyLoyalty, u.MonthlyLoyalty)
	mergeValue(&merged.FirstBooking, u.FirstBooking)
	return merged
}

// Validate проверяет, что каждое значение таблицы строго положительное.
func (s PointSchedule) Validate() error {
	values := []struct {
		name  string
		value int64
	}{
		{"gameParticipation", s.GameParticipation},
		{"gameWin", s.GameWin},
		{"tournamentParticipation", s.TournamentParticipation},
		{"tournamentWin", s.TournamentWin},
		{"classAttendance", s.ClassAttendance},
		{"referral", s.Referral},
		{"review", s.Review},
		{"birthday", s.Birthday},
		{"monthlyLoyalty", s.MonthlyLoyalty},
		{"firstBooking", s.FirstBooking},
	}
	for _, v := range values {
		if v.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSchedule, v.name, v.value)
		}
	}
	return nil
}

func mergeValue(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}
