package models

import (
	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

// Request модели

// UpdateAgendaSettingsRequest запрос на обновление настроек расписания
type UpdateAgendaSettingsRequest struct {
	UserID          int64   `json:"userId"`
	StartHour       string  `json:"startHour"`       // "08:00"
	EndHour         string  `json:"endHour"`         // "18:00"
	ServiceDuration int     `json:"serviceDuration"` // шаг сетки в минутах
	WorkingDays     []int64 `json:"workingDays"`     // 0 = воскресенье ... 6 = суббота
}

// ToDomain конвертирует request в domain модель
func (r *UpdateAgendaSettingsRequest) ToDomain(businessID int64) (*domain.AgendaSettings, error) {
	startHour, err := types.NewTimeStringFromString(r.StartHour)
	if err != nil {
		return nil, err
	}
	endHour, err := types.NewTimeStringFromString(r.EndHour)
	if err != nil {
		return nil, err
	}
	return &domain.AgendaSettings{
		BusinessID:      businessID,
		StartHour:       startHour,
		EndHour:         endHour,
		ServiceDuration: r.ServiceDuration,
		WorkingDays:     r.WorkingDays,
	}, nil
}

// Response модели

// AgendaSettingsResponse ответ с настройками расписания
type AgendaSettingsResponse struct {
	BusinessID      int64   `json:"businessId"`
	StartHour       string  `json:"startHour"`
	EndHour         string  `json:"endHour"`
	ServiceDuration int     `json:"serviceDuration"`
	WorkingDays     []int64 `json:"workingDays"`
}

// FromDomainSettings конвертирует domain модель в response
func FromDomainSettings(s *domain.AgendaSettings) *AgendaSettingsResponse {
	return &AgendaSettingsResponse{
		BusinessID:      s.BusinessID,
		StartHour:       string(s.StartHour),
		EndHour:         string(s.EndHour),
		ServiceDuration: s.ServiceDuration,
		WorkingDays:     s.WorkingDays,
	}
}
