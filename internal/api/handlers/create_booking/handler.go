package create_booking

import (
	"errors"
	"net/http"

	"github.com/salonhub/SH-BookingService/internal/api/handlers"
	"github.com/salonhub/SH-BookingService/internal/api/middleware"
	createBooking "github.com/salonhub/SH-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgBusinessNotFound   = "бизнес не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgStylistNotFound    = "мастер не найден"
	msgCustomerNotFound   = "клиент не найден"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandlePublic POST /api/v1/public/bookings
// Публичное бронирование со страницы салона, без аутентификации
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	var req PublicBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /public/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "POST /public/bookings", req.BusinessID, err)
		return
	}

	h.logger.Info("POST /public/bookings - Booking created: appointment_id=%d, reference=%s, business_id=%d",
		result.Appointment.ID, result.Appointment.Reference, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleInternal POST /api/v1/appointments
// Создание записи владельцем бизнеса из кабинета
func (h *Handler) HandleInternal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req InternalAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "POST /appointments", req.BusinessID, err)
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, business_id=%d, user_id=%d",
		result.Appointment.ID, req.BusinessID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondError маппит ошибки use case на HTTP статусы
func (h *Handler) respondError(w http.ResponseWriter, route string, businessID int64, err error) {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: business_id=%d, error=%v", route, businessID, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		h.logger.Warn("%s - Slot not available: business_id=%d", route, businessID)
		handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

	case errors.Is(err, createBooking.ErrBusinessNotFound):
		h.logger.Warn("%s - Business not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgBusinessNotFound)

	case errors.Is(err, createBooking.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createBooking.ErrStylistNotFound):
		h.logger.Warn("%s - Stylist not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgStylistNotFound)

	case errors.Is(err, createBooking.ErrCustomerNotFound):
		h.logger.Warn("%s - Customer not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgCustomerNotFound)

	case errors.Is(err, createBooking.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: business_id=%d", route, businessID)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed to create booking: business_id=%d, error=%v", route, businessID, err)
		handlers.RespondInternalError(w)
	}
}
