package domain

import "github.com/salonhub/SH-BookingService/pkg/types"

// Default agenda settings
// Применяются, когда салон ещё не настроил свой график
const (
	DefaultStartHour       = types.TimeString("08:00")
	DefaultEndHour         = types.TimeString("18:00")
	DefaultServiceDuration = 30 // минут
)

// DefaultWorkingDays все дни недели (0 = воскресенье ... 6 = суббота)
var DefaultWorkingDays = []int64{0, 1, 2, 3, 4, 5, 6}

// AllowedGranularities допустимые значения шага сетки слотов в минутах
// Значение вне этого списка приводится к DefaultServiceDuration
var AllowedGranularities = []int{10, 15, 20, 25, 30, 45, 60, 90}

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 часов
	MaxNotesLength              = 500
	MaxNameLength               = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
