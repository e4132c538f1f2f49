package stylists

import (
	"context"

	"github.com/salonhub/SH-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateStylist(ctx context.Context, businessID int64, req *models.CreateStylistRequest) (*models.StylistResponse, error)
	ListStylists(ctx context.Context, businessID int64, userID *int64) (*models.StylistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
