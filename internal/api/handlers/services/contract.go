package services

import (
	"context"

	"github.com/salonhub/SH-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, businessID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	ListServices(ctx context.Context, businessID int64, userID *int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
