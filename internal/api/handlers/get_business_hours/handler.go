package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
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

// Handle GET /api/v1/settings/business-hours
// Query params: resourceId (опционально, без него - часы салона)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var resourceID *string
	if value := r.URL.Query().Get("resourceId"); value != "" {
		resourceID = &value
	}

	result, err := h.service.GetBusinessHours(r.Context(), resourceID)
	if err != nil {
		h.logger.Error("GET /settings/business-hours - Failed to get business hours: resource_id=%v, error=%v",
			resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
