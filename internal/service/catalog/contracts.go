package catalog

import (
	"context"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByBusiness(ctx context.Context, businessID int64, activeOnly bool) ([]*domain.Service, error)
}

// StylistRepository интерфейс репозитория мастеров
type StylistRepository interface {
	Create(ctx context.Context, st *domain.Stylist) (*domain.Stylist, error)
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	ListByBusiness(ctx context.Context, businessID int64, publicOnly bool) ([]*domain.Stylist, error)
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
