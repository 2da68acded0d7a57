package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/settings"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные часы работы"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /settings/business-hours - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("PUT /settings/business-hours - Failed to update business hours: resource_id=%v, error=%v",
			req.ResourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings/business-hours - Business hours updated: resource_id=%v, %d-%d",
		req.ResourceID, result.OpenHour, result.CloseHour)
	handlers.RespondJSON(w, http.StatusOK, result)
}
