package resolve_booking_link

import (
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/service/catalog/models"
)

// BookingPageResponse данные публичной страницы бронирования
type BookingPageResponse struct {
	Business *BusinessInfo             `json:"business"`
	Services []*models.ServiceResponse `json:"services"`
	Stylists []*models.StylistResponse `json:"stylists"`
}

// BusinessInfo публичная информация о бизнесе
type BusinessInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	BookingLink string `json:"bookingLink"`
	ThemeColor  string `json:"themeColor,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`
}

// FromBusiness конвертирует ответ BusinessService в публичную модель
// Email и владелец бизнеса наружу не отдаются
func FromBusiness(b *businessservice.Business) *BusinessInfo {
	return &BusinessInfo{
		ID:          b.ID,
		Name:        b.Name,
		BookingLink: b.BookingLink,
		ThemeColor:  deref(b.ThemeColor),
		AccentColor: deref(b.AccentColor),
	}
}

// deref возвращает значение указателя или пустую строку
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
