package models

import (
	"github.com/salonhub/SH-BookingService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	UserID          int64    `json:"userId"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Color           string   `json:"color,omitempty"` // "#RRGGBB"
	Price           *float64 `json:"price,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomain(businessID int64) *domain.Service {
	return &domain.Service{
		BusinessID:      businessID,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Color:           r.Color,
		Price:           r.Price,
		Active:          true,
	}
}

// CreateStylistRequest запрос на создание мастера
type CreateStylistRequest struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Public bool   `json:"public"`
	Status string `json:"status,omitempty"` // available | booked | off
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64    `json:"id"`
	BusinessID      int64    `json:"businessId"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Color           string   `json:"color,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Active          bool     `json:"active"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// StylistResponse ответ с данными мастера
type StylistResponse struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"businessId"`
	Name       string `json:"name"`
	Public     bool   `json:"public"`
	Status     string `json:"status"`
}

// StylistListResponse список мастеров
type StylistListResponse struct {
	Stylists []*StylistResponse `json:"stylists"`
	Total    int                `json:"total"`
}

// FromDomainService конвертирует domain модель услуги в response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		BusinessID:      s.BusinessID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Color:           s.Color,
		Price:           s.Price,
		Active:          s.Active,
	}
}

// FromDomainServiceList конвертирует список услуг в response
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	items := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, FromDomainService(s))
	}
	return &ServiceListResponse{Services: items, Total: len(items)}
}

// FromDomainStylist конвертирует domain модель мастера в response
func FromDomainStylist(s *domain.Stylist) *StylistResponse {
	return &StylistResponse{
		ID:         s.ID,
		BusinessID: s.BusinessID,
		Name:       s.Name,
		Public:     s.Public,
		Status:     string(s.Status),
	}
}

// FromDomainStylistList конвертирует список мастеров в response
func FromDomainStylistList(stylists []*domain.Stylist) *StylistListResponse {
	items := make([]*StylistResponse, 0, len(stylists))
	for _, s := range stylists {
		items = append(items, FromDomainStylist(s))
	}
	return &StylistListResponse{Stylists: items, Total: len(items)}
}
