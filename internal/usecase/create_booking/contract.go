package create_booking

import (
	"context"
	"time"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/integrations/mailservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// ListWithFilter внутри транзакции блокирует строки выбранной даты (FOR UPDATE)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByBusinessAndEmail(ctx context.Context, businessID int64, email string) (*domain.Customer, error)
}

// AgendaRepository интерфейс репозитория настроек расписания
type AgendaRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.AgendaSettings, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// StylistRepository интерфейс репозитория мастеров
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// BusinessServiceClient интерфейс клиента для BusinessService
type BusinessServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error)
}

// MailServiceClient интерфейс клиента для MailService
type MailServiceClient interface {
	SendBookingConfirmation(ctx context.Context, payload *mailservice.BookingConfirmation) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	// DoSerializable выполняет fn в serializable-транзакции с повтором
	// при конфликте сериализации
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker интерфейс распределённой блокировки слота
type SlotLocker interface {
	WithLock(ctx context.Context, businessID, stylistID int64, date time.Time, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
