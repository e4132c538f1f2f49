package resolve_booking_link

import (
	"context"

	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/service/catalog/models"
)

type BusinessServiceClient interface {
	ResolveBookingLink(ctx context.Context, bookingLink string) (*businessservice.Business, error)
}

type CatalogService interface {
	ListServices(ctx context.Context, businessID int64, userID *int64) (*models.ServiceListResponse, error)
	ListStylists(ctx context.Context, businessID int64, userID *int64) (*models.StylistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
