package get_price_heatmap

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAdmin/internal/api/middleware"
	getPriceHeatmap "github.com/m04kA/SMC-SalonAdmin/internal/usecase/get_price_heatmap"
)

const (
	msgMissingUserID    = "не указан пользователь"
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidWeeks     = "некорректное количество недель"
	msgServiceNotFound  = "услуга не найдена"
	msgFeatureLocked    = "умное ценообразование недоступно на текущем тарифе"

	codeFeatureLocked = "FeatureLocked:smart_pricing"
)

type Handler struct {
	useCase GetPriceHeatmapUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceHeatmapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing/heatmap
// Query params: serviceId (required), resourceId, weeks (1..12, по умолчанию 4)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /pricing/heatmap - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	req := &getPriceHeatmap.Request{UserID: userID, ServiceID: query.Get("serviceId")}
	if req.ServiceID == "" {
		h.logger.Warn("GET /pricing/heatmap - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	if resourceID := query.Get("resourceId"); resourceID != "" {
		req.ResourceID = &resourceID
	}

	if weeksStr := query.Get("weeks"); weeksStr != "" {
		weeks, err := strconv.Atoi(weeksStr)
		if err != nil || weeks <= 0 {
			h.logger.Warn("GET /pricing/heatmap - Invalid weeks: %s", weeksStr)
			handlers.RespondBadRequest(w, msgInvalidWeeks)
			return
		}
		req.Weeks = weeks
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getPriceHeatmap.ErrFeatureLocked):
			h.logger.Warn("GET /pricing/heatmap - Feature locked: user_id=%s", userID)
			handlers.RespondErrorBody(w, http.StatusPaymentRequired, handlers.ErrorResponse{
				Error: msgFeatureLocked,
				Code:  codeFeatureLocked,
			})

		case errors.Is(err, getPriceHeatmap.ErrInvalidInput):
			h.logger.Warn("GET /pricing/heatmap - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getPriceHeatmap.ErrServiceNotFound):
			h.logger.Warn("GET /pricing/heatmap - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /pricing/heatmap - Failed to build heatmap: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
