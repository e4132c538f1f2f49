package reschedule_appointment

import (
	"time"

	"github.com/salonhub/SH-BookingService/internal/domain"
	rescheduleAppointment "github.com/salonhub/SH-BookingService/internal/usecase/reschedule_appointment"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	NewDate      string `json:"newDate"`      // "2026-09-15"
	NewStartTime string `json:"newStartTime"` // "10:00"
	NewStylistID *int64 `json:"newStylistId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(appointmentID, actorID int64) (*rescheduleAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}
	startTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}
	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		ActorID:       actorID,
		NewDate:       date,
		NewStartTime:  startTime,
		NewStylistID:  r.NewStylistID,
	}, nil
}
