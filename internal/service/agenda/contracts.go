package agenda

import (
	"context"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
)

// AgendaRepository интерфейс репозитория настроек расписания
type AgendaRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.AgendaSettings, error)
	Create(ctx context.Context, settings *domain.AgendaSettings) (*domain.AgendaSettings, error)
	Update(ctx context.Context, businessID int64, settings *domain.AgendaSettings) (*domain.AgendaSettings, error)
}

// BusinessServiceClient интерфейс клиента для BusinessService
type BusinessServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
