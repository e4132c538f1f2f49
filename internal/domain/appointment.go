package domain

import (
	"errors"
	"time"

	"github.com/salonhub/SH-BookingService/pkg/types"
)

// ErrUnknownStatus возвращается при попытке использовать статус вне закрытого набора
var ErrUnknownStatus = errors.New("unknown appointment status")

// AppointmentStatus статус записи
// Закрытый набор значений; любая строка извне проходит через ParseStatus
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseStatus валидирует строку и конвертирует её в AppointmentStatus
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

// Appointment запись клиента на услугу
type Appointment struct {
	ID         int64
	BusinessID int64
	CustomerID int64
	ServiceID  int64
	StylistID  *int64 // nil = мастер не выбран (внутренняя быстрая запись)

	Reference       string // публичный UUID записи, используется в письме подтверждения
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // снапшот длительности услуги на момент записи
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName string
	Price       *float64 // снапшот цены, может расходиться с текущей ценой услуги
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
// Отменённые записи не участвуют в проверке конфликтов
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeRescheduled returns true if the appointment can be moved to another slot
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled
}

// EndTime возвращает время окончания записи
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// AppointmentsFilter фильтр для получения записей бизнеса
type AppointmentsFilter struct {
	BusinessID       int64              // Обязательный параметр (tenant isolation)
	StylistID        *int64             // Фильтр по мастеру (опционально)
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые записи
}
