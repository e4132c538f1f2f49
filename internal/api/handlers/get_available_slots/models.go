package get_available_slots

import (
	"github.com/salonhub/SH-BookingService/internal/domain"
	getAvailableSlots "github.com/salonhub/SH-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse один слот сетки
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string         `json:"date"` // "2026-09-15"
	BusinessID int64          `json:"businessId"`
	ServiceID  int64          `json:"serviceId"`
	StylistID  *int64         `json:"stylistId,omitempty"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: string(s.StartTime),
			Available: s.Available,
		})
	}
	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		StylistID:  resp.StylistID,
		Slots:      slots,
	}
}
