package update_agenda_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonhub/SH-BookingService/internal/api/handlers"
	"github.com/salonhub/SH-BookingService/internal/api/middleware"
	"github.com/salonhub/SH-BookingService/internal/service/agenda"
	"github.com/salonhub/SH-BookingService/internal/service/agenda/models"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBusinessNotFound   = "бизнес не найден"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

// UpdateBody тело запроса обновления настроек
type UpdateBody struct {
	StartHour       string  `json:"startHour"`
	EndHour         string  `json:"endHour"`
	ServiceDuration int     `json:"serviceDuration"`
	WorkingDays     []int64 `json:"workingDays"`
}

type Handler struct {
	service AgendaService
	logger  Logger
}

func NewHandler(service AgendaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/agenda-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/agenda-settings - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/agenda-settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body UpdateBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /businesses/{id}/agenda-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), businessID, &models.UpdateAgendaSettingsRequest{
		UserID:          userID,
		StartHour:       body.StartHour,
		EndHour:         body.EndHour,
		ServiceDuration: body.ServiceDuration,
		WorkingDays:     body.WorkingDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/agenda-settings - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, agenda.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/agenda-settings - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, agenda.ErrAccessDenied):
			h.logger.Warn("PUT /businesses/{id}/agenda-settings - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /businesses/{id}/agenda-settings - Failed to update settings: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/agenda-settings - Settings updated: business_id=%d, user_id=%d",
		businessID, userID)
	handlers.RespondJSON(w, http.StatusOK, settings)
}
