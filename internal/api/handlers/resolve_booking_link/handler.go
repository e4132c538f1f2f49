package resolve_booking_link

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salonhub/SH-BookingService/internal/api/handlers"
	businessClient "github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
)

const (
	msgMissingBookingLink = "не указана ссылка бронирования"
	msgNotFound           = "страница бронирования не найдена"
)

type Handler struct {
	businessClient BusinessServiceClient
	catalogService CatalogService
	logger         Logger
}

func NewHandler(businessClient BusinessServiceClient, catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		businessClient: businessClient,
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle GET /book/{bookingLink}
// Публичная страница бронирования: бизнес, активные услуги и публичные мастера
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingLink := vars["bookingLink"]
	if bookingLink == "" {
		h.logger.Warn("GET /book/{link} - Missing booking link")
		handlers.RespondBadRequest(w, msgMissingBookingLink)
		return
	}

	business, err := h.businessClient.ResolveBookingLink(r.Context(), bookingLink)
	if err != nil {
		if errors.Is(err, businessClient.ErrBookingLinkNotFound) {
			h.logger.Warn("GET /book/{link} - Booking link not found: link=%s", bookingLink)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /book/{link} - Failed to resolve booking link: link=%s, error=%v", bookingLink, err)
		handlers.RespondInternalError(w)
		return
	}

	services, err := h.catalogService.ListServices(r.Context(), business.ID, nil)
	if err != nil {
		h.logger.Error("GET /book/{link} - Failed to list services: business_id=%d, error=%v", business.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	stylists, err := h.catalogService.ListStylists(r.Context(), business.ID, nil)
	if err != nil {
		h.logger.Error("GET /book/{link} - Failed to list stylists: business_id=%d, error=%v", business.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /book/{link} - Booking page resolved: link=%s, business_id=%d, services=%d, stylists=%d",
		bookingLink, business.ID, services.Total, stylists.Total)
	handlers.RespondJSON(w, http.StatusOK, &BookingPageResponse{
		Business: FromBusiness(business),
		Services: services.Services,
		Stylists: stylists.Stylists,
	})
}
