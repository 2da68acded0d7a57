package suggest_price

import (
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/demand"
)

// SuggestPriceRequest HTTP request model
type SuggestPriceRequest struct {
	BasePrice        float64  `json:"basePrice"`
	Demand           float64  `json:"demand"`                     // 0..100, вне диапазона обрезается
	DataCompleteness *float64 `json:"dataCompleteness,omitempty"` // 0..1, по умолчанию 0
}

// SuggestPriceResponse HTTP response model
type SuggestPriceResponse struct {
	SuggestedPrice int     `json:"suggestedPrice"`
	Multiplier     float64 `json:"multiplier"`
	Confidence     string  `json:"confidence"`
}

// FromSuggestion конвертирует результат модели в HTTP response
func FromSuggestion(s demand.Suggestion) *SuggestPriceResponse {
	return &SuggestPriceResponse{
		SuggestedPrice: s.SuggestedPrice,
		Multiplier:     s.Multiplier,
		Confidence:     string(s.Confidence),
	}
}
