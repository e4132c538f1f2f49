package create_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("create_booking: invalid input")
	// ErrBusinessNotFound бизнес не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")
	// ErrServiceNotFound услуга не найдена или не принадлежит бизнесу
	ErrServiceNotFound = errors.New("create_booking: service not found")
	// ErrStylistNotFound мастер не найден или не принадлежит бизнесу
	ErrStylistNotFound = errors.New("create_booking: stylist not found")
	// ErrCustomerNotFound клиент не найден или не принадлежит бизнесу
	ErrCustomerNotFound = errors.New("create_booking: customer not found")
	// ErrSlotNotAvailable слот занят, вне сетки или день нерабочий
	ErrSlotNotAvailable = errors.New("create_booking: slot not available")
	// ErrAccessDenied пользователь не является владельцем бизнеса
	ErrAccessDenied = errors.New("create_booking: access denied")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_booking: internal error")
)
