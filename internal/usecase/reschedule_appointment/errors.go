package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input")
	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")
	// ErrStylistNotFound мастер не найден или не принадлежит бизнесу
	ErrStylistNotFound = errors.New("reschedule_appointment: stylist not found")
	// ErrNotReschedulable запись нельзя перенести (завершена или отменена)
	ErrNotReschedulable = errors.New("reschedule_appointment: appointment cannot be rescheduled")
	// ErrSlotNotAvailable целевой слот занят, вне сетки или день нерабочий
	ErrSlotNotAvailable = errors.New("reschedule_appointment: slot not available")
	// ErrAccessDenied пользователь не является владельцем бизнеса
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
