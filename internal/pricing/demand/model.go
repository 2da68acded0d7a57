// Package demand переводит сигнал спроса (0-100) в рекомендованную цену для тепловой карты.
// Рекомендация носит справочный характер и никогда не применяется к цене автоматически.
package demand

import (
	"math"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

const (
	neutralDemand = 50.0
	maxSwing      = 0.3 // ±30% при изменении спроса на 100 п.п.

	highCompleteness = 0.7
	midCompleteness  = 0.3
)

// Hints подсказки о качестве данных для ячейки
type Hints struct {
	DataCompleteness float64 // 0..1
}

// Suggestion рекомендованная цена
type Suggestion struct {
	SuggestedPrice int
	Multiplier     float64
	Confidence     domain.Confidence
}

// SuggestPrice линейная реакция цены на спрос с центром в 50:
// спрос 0 -> x0.85, 50 -> x1.0, 100 -> x1.15
func SuggestPrice(basePrice, demandPct float64, hints Hints) Suggestion {
	multiplier := Multiplier(demandPct)
	return Suggestion{
		SuggestedPrice: int(math.Round(basePrice * multiplier)),
		Multiplier:     multiplier,
		Confidence:     ConfidenceFor(hints.DataCompleteness),
	}
}

// Multiplier множитель цены для спроса, спрос ограничивается диапазоном 0..100
func Multiplier(demandPct float64) float64 {
	d := clamp(demandPct, 0, 100)
	return 1 + (d-neutralDemand)/100*maxSwing
}

// ConfidenceFor уровень доверия по полноте данных
func ConfidenceFor(completeness float64) domain.Confidence {
	switch {
	case completeness >= highCompleteness:
		return domain.ConfidenceHigh
	case completeness >= midCompleteness:
		return domain.ConfidenceMid
	default:
		return domain.ConfidenceLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
