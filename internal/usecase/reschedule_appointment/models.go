package reschedule_appointment

import (
	"time"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

// Request запрос на перенос записи
type Request struct {
	AppointmentID int64
	ActorID       int64 // id пользователя из заголовка авторизации

	NewDate      time.Time
	NewStartTime types.TimeString
	NewStylistID *int64 // nil = мастер остаётся прежним
}

// Response результат переноса записи
type Response struct {
	Appointment *domain.Appointment
}
