package create_booking

import (
	"time"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/internal/service/appointments/models"
	createBooking "github.com/salonhub/SH-BookingService/internal/usecase/create_booking"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

// PublicBookingRequest HTTP request model публичного бронирования
type PublicBookingRequest struct {
	BusinessID    int64   `json:"businessId"`
	ServiceID     int64   `json:"serviceId"`
	StylistID     *int64  `json:"stylistId,omitempty"`
	Date          string  `json:"date"`      // "2026-09-15"
	StartTime     string  `json:"startTime"` // "10:00"
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PublicBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	return &createBooking.Request{
		Source:        createBooking.SourcePublic,
		BusinessID:    r.BusinessID,
		ServiceID:     r.ServiceID,
		StylistID:     r.StylistID,
		Date:          date,
		StartTime:     startTime,
		Notes:         r.Notes,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
	}, nil
}

// InternalAppointmentRequest HTTP request model записи из кабинета владельца
type InternalAppointmentRequest struct {
	BusinessID int64   `json:"businessId"`
	ServiceID  int64   `json:"serviceId"`
	StylistID  *int64  `json:"stylistId,omitempty"`
	CustomerID int64   `json:"customerId"`
	Date       string  `json:"date"`      // "2026-09-15"
	StartTime  string  `json:"startTime"` // "10:00"
	Notes      *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InternalAppointmentRequest) ToUseCaseRequest(actorID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	customerID := r.CustomerID
	return &createBooking.Request{
		Source:     createBooking.SourceInternal,
		BusinessID: r.BusinessID,
		ServiceID:  r.ServiceID,
		StylistID:  r.StylistID,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
		CustomerID: &customerID,
		ActorID:    &actorID,
	}, nil
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	Appointment *models.AppointmentResponse `json:"appointment"`
	Customer    *models.CustomerResponse    `json:"customer"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		Appointment: models.FromDomainAppointment(resp.Appointment),
		Customer:    models.FromDomainCustomer(resp.Customer),
	}
}
