package suggest_price

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/demand"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNegativePrice       = "базовая цена не может быть отрицательной"
	msgInvalidCompleteness = "полнота данных должна быть в диапазоне от 0 до 1"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/pricing/suggest
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SuggestPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/suggest - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BasePrice < 0 {
		handlers.RespondBadRequest(w, msgNegativePrice)
		return
	}

	completeness := 0.0
	if req.DataCompleteness != nil {
		completeness = *req.DataCompleteness
		if completeness < 0 || completeness > 1 {
			handlers.RespondBadRequest(w, msgInvalidCompleteness)
			return
		}
	}

	suggestion := demand.SuggestPrice(req.BasePrice, req.Demand, demand.Hints{DataCompleteness: completeness})

	h.logger.Info("POST /pricing/suggest - base=%.2f, demand=%.2f, suggested=%d",
		req.BasePrice, req.Demand, suggestion.SuggestedPrice)
	handlers.RespondJSON(w, http.StatusOK, FromSuggestion(suggestion))
}
