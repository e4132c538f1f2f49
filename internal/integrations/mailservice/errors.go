package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrSendFailed возвращается, когда MailService отклонил письмо
	// Отправка письма fire-and-forget: эта ошибка логируется и никогда
	// не приводит к откату бронирования
	ErrSendFailed = errors.New("mailservice client: send failed")
)
