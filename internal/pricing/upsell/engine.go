// Package upsell считает итоговую цену, длительность и скидку для экрана
// подтверждения записи: базовая услуга, доп. услуги, продление или комплекс.
// Движок не проверяет тариф - это делает вызывающий use case.
package upsell

import (
	"math"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// Input входные данные расчета
type Input struct {
	BasePrice    float64
	BaseDuration int // минуты
	Selection    domain.UpsellSelection
	Catalog      domain.Catalog
}

// Engine движок расчета апсейла
type Engine struct {
	pricer BundlePricer
}

// NewEngine создает движок; nil pricer заменяется на DefaultBundlePricer
func NewEngine(pricer BundlePricer) *Engine {
	if pricer == nil {
		pricer = DefaultBundlePricer{}
	}
	return &Engine{pricer: pricer}
}

// ComputeTotals считает итог. Идемпотентна: одинаковый вход дает одинаковый результат.
// Паникует, если в выборе есть id, отсутствующий в каталоге.
func (e *Engine) ComputeTotals(in Input) domain.Totals {
	if in.Selection.HasBundle() {
		bundle := mustBundle(in.Catalog, *in.Selection.SelectedBundleID)
		if bundle.IsActive {
			return e.bundleTotals(bundle, in.Catalog)
		}
	}

	totalPrice := in.BasePrice
	totalDuration := in.BaseDuration
	discount := 0.0

	for _, id := range in.Selection.AdditionalServiceIDs {
		s := mustService(in.Catalog, id)
		totalPrice += s.Price
		totalDuration += s.DurationMinutes
	}

	if in.Selection.TimeExtension {
		totalDuration += domain.TimeExtensionMinutes
		timeDiscount := totalPrice * domain.TimeExtensionDiscount
		discount += timeDiscount
		totalPrice -= timeDiscount
	}

	return domain.Totals{
		TotalPrice:    round(totalPrice),
		TotalDuration: totalDuration,
		Discount:      round(discount),
	}
}

// bundleTotals доп. услуги и продление при выбранном комплексе игнорируются
func (e *Engine) bundleTotals(bundle *domain.Bundle, catalog domain.Catalog) domain.Totals {
	price := e.pricer.Price(bundle, catalog)
	individual := IndividualTotal(bundle, catalog)

	return domain.Totals{
		TotalPrice:    round(price),
		TotalDuration: e.pricer.Duration(bundle, catalog),
		Discount:      round(math.Max(0, individual-price)),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
