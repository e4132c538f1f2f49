package create_booking

import (
	"time"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

// Source источник запроса на бронирование
type Source string

const (
	// SourcePublic бронирование с публичной страницы (клиент указывает имя и email)
	SourcePublic Source = "public"
	// SourceInternal бронирование владельцем из кабинета (по id клиента)
	SourceInternal Source = "internal"
)

// Request запрос на создание записи
type Request struct {
	Source     Source
	BusinessID int64
	ServiceID  int64
	StylistID  *int64
	Date       time.Time
	StartTime  types.TimeString
	Notes      *string

	// Публичный источник
	CustomerName  string
	CustomerEmail string

	// Внутренний источник
	CustomerID *int64
	ActorID    *int64 // id пользователя из заголовка авторизации
}

// Response результат создания записи
type Response struct {
	Appointment *domain.Appointment
	Customer    *domain.Customer
}
