package stylists

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

// CreateBody тело запроса создания мастера
type CreateBody struct {
	Name   string `json:"name"`
	Public bool   `json:"public"`
	Status string `json:"status,omitempty"`
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

// HandleCreate POST /api/v1/businesses/{businessId}/stylists
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/stylists - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/stylists - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body CreateBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /businesses/{id}/stylists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateStylist(r.Context(), businessID, &models.CreateStylistRequest{
		UserID: userID,
		Name:   body.Name,
		Public: body.Public,
		Status: body.Status,
	})
	if err != nil {
		h.respondError(w, "POST /businesses/{id}/stylists", businessID, err)
		return
	}

	h.logger.Info("POST /businesses/{id}/stylists - Stylist created: stylist_id=%d, business_id=%d, user_id=%d",
		created.ID, businessID, userID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleList GET /api/v1/businesses/{businessId}/stylists
// Без аутентификации возвращает только публичных мастеров
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/stylists - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	result, err := h.service.ListStylists(r.Context(), businessID, userID)
	if err != nil {
		h.respondError(w, "GET /businesses/{id}/stylists", businessID, err)
		return
	}

	h.logger.Info("GET /businesses/{id}/stylists - Retrieved %d stylists: business_id=%d", result.Total, businessID)
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
