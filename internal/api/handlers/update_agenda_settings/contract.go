package update_agenda_settings

import (
	"context"

	"github.com/salonhub/SH-BookingService/internal/service/agenda/models"
)

type AgendaService interface {
	UpdateSettings(ctx context.Context, businessID int64, req *models.UpdateAgendaSettingsRequest) (*models.AgendaSettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
