package domain

import (
	"errors"
	"time"
)

// ErrUnknownStylistStatus возвращается при некорректном статусе мастера
var ErrUnknownStylistStatus = errors.New("unknown stylist status")

// Service услуга салона
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Color           string   // цвет для отображения в календаре ("#RRGGBB")
	Price           *float64 // nil = цена не указана
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StylistStatus статус мастера
type StylistStatus string

const (
	StylistAvailable StylistStatus = "available"
	StylistBooked    StylistStatus = "booked"
	StylistOff       StylistStatus = "off"
)

// ParseStylistStatus валидирует строку и конвертирует её в StylistStatus
func ParseStylistStatus(s string) (StylistStatus, error) {
	switch StylistStatus(s) {
	case StylistAvailable, StylistBooked, StylistOff:
		return StylistStatus(s), nil
	default:
		return "", ErrUnknownStylistStatus
	}
}

// Stylist мастер салона
type Stylist struct {
	ID         int64
	BusinessID int64
	Name       string
	Public     bool // виден ли мастер на публичной странице бронирования
	Status     StylistStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Customer клиент салона
// В рамках одного бизнеса email служит естественным ключом при публичном
// бронировании (upsert по паре business_id + email)
type Customer struct {
	ID         int64
	BusinessID int64
	Name       string
	Email      *string
	Phone      *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
