package compute_totals

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAdmin/internal/api/middleware"
	computeTotals "github.com/m04kA/SMC-SalonAdmin/internal/usecase/compute_totals"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "не указан пользователь"
	msgServiceNotFound      = "услуга не найдена"
	msgBundleNotFound       = "комплекс не найден"
	msgFeatureLocked        = "функция недоступна на текущем тарифе"
	msgExtensionUnavailable = "после записи нет свободного времени для продления"

	codeFeatureLocked = "FeatureLocked"
)

type Handler struct {
	useCase ComputeTotalsUseCase
	logger  Logger
}

func NewHandler(useCase ComputeTotalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/totals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/totals - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ComputeTotalsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/totals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var locked *computeTotals.FeatureLockedError
		switch {
		case errors.As(err, &locked):
			h.logger.Warn("POST /bookings/totals - Feature locked: user_id=%s, feature=%s", userID, locked.Feature)
			handlers.RespondErrorBody(w, http.StatusPaymentRequired, handlers.ErrorResponse{
				Error: msgFeatureLocked,
				Code:  codeFeatureLocked + ":" + string(locked.Feature),
			})

		case errors.Is(err, computeTotals.ErrInvalidInput):
			h.logger.Warn("POST /bookings/totals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, computeTotals.ErrServiceNotFound):
			h.logger.Warn("POST /bookings/totals - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, computeTotals.ErrBundleNotFound):
			h.logger.Warn("POST /bookings/totals - Bundle not found: %v", err)
			handlers.RespondNotFound(w, msgBundleNotFound)

		case errors.Is(err, computeTotals.ErrExtensionUnavailable):
			h.logger.Warn("POST /bookings/totals - Extension unavailable: user_id=%s", userID)
			handlers.RespondConflict(w, msgExtensionUnavailable)

		default:
			h.logger.Error("POST /bookings/totals - Failed to compute totals: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
