package domain

import (
	"time"

	"github.com/salonhub/SH-BookingService/pkg/types"
)

// AgendaSettings настройки расписания бизнеса (1:1 с бизнесом)
// Создаются лениво при первом обращении с дефолтными значениями
type AgendaSettings struct {
	ID              int64
	BusinessID      int64
	StartHour       types.TimeString
	EndHour         types.TimeString
	ServiceDuration int     // шаг сетки слотов в минутах
	WorkingDays     []int64 // дни недели 0-6 (0 = воскресенье)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultAgendaSettings возвращает настройки по умолчанию:
// 08:00-18:00, шаг 30 минут, все дни рабочие
func DefaultAgendaSettings(businessID int64) *AgendaSettings {
	days := make([]int64, len(DefaultWorkingDays))
	copy(days, DefaultWorkingDays)

	return &AgendaSettings{
		BusinessID:      businessID,
		StartHour:       DefaultStartHour,
		EndHour:         DefaultEndHour,
		ServiceDuration: DefaultServiceDuration,
		WorkingDays:     days,
	}
}

// Granularity возвращает шаг сетки, приведённый к допустимому значению
// Значение вне AllowedGranularities заменяется на DefaultServiceDuration
func (s *AgendaSettings) Granularity() int {
	for _, g := range AllowedGranularities {
		if s.ServiceDuration == g {
			return s.ServiceDuration
		}
	}
	return DefaultServiceDuration
}

// IsWorkingDay проверяет, что дата приходится на рабочий день
func (s *AgendaSettings) IsWorkingDay(date time.Time) bool {
	weekday := int64(date.Weekday())
	for _, d := range s.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}
