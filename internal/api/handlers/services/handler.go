package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonhub/SH-BookingService/internal/api/handlers"
	"github.com/salonhub/SH-BookingService/internal/api/middleware"
	"github.com/salonhub/SH-BookingService/internal/service/catalog"
	"github.com/salonhub/SH-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBusinessNotFound   = "бизнес не найден"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

// CreateBody тело запроса создания услуги
type CreateBody struct {
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Color           string   `json:"color,omitempty"`
	Price           *float64 `json:"price,omitempty"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/businesses/{businessId}/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/services - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body CreateBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /businesses/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateService(r.Context(), businessID, &models.CreateServiceRequest{
		UserID:          userID,
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		Color:           body.Color,
		Price:           body.Price,
	})
	if err != nil {
		h.respondError(w, "POST /businesses/{id}/services", businessID, err)
		return
	}

	h.logger.Info("POST /businesses/{id}/services - Service created: service_id=%d, business_id=%d, user_id=%d",
		created.ID, businessID, userID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleList GET /api/v1/businesses/{businessId}/services
// Без аутентификации возвращает только активные услуги
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Авторизация опциональна: владелец видит и неактивные услуги
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	result, err := h.service.ListServices(r.Context(), businessID, userID)
	if err != nil {
		h.respondError(w, "GET /businesses/{id}/services", businessID, err)
		return
	}

	h.logger.Info("GET /businesses/{id}/services - Retrieved %d services: business_id=%d", result.Total, businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, businessID int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: business_id=%d, error=%v", route, businessID, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, catalog.ErrBusinessNotFound):
		h.logger.Warn("%s - Business not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgBusinessNotFound)

	case errors.Is(err, catalog.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: business_id=%d", route, businessID)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Catalog operation failed: business_id=%d, error=%v", route, businessID, err)
		handlers.RespondInternalError(w)
	}
}
