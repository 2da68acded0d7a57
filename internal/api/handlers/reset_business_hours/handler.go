package reset_business_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/settings"
)

const (
	msgNotFound = "у ресурса нет собственных часов работы"
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

// Handle DELETE /api/v1/settings/business-hours/{resourceId}
// После удаления ресурс работает по часам салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	if err := h.service.ResetResource(r.Context(), resourceID); err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			h.logger.Warn("DELETE /settings/business-hours/{id} - Override not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /settings/business-hours/{id} - Failed to reset: resource_id=%s, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /settings/business-hours/{id} - Override removed: resource_id=%s", resourceID)
	w.WriteHeader(http.StatusNoContent)
}
