package upsell

import (
	"fmt"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// BundlePricer вычисляет цену и длительность комплекса из его состава
// Формула - бизнес-данные салона, поэтому она внедряется, а не зашита в движок
type BundlePricer interface {
	Price(bundle *domain.Bundle, catalog domain.Catalog) float64
	Duration(bundle *domain.Bundle, catalog domain.Catalog) int
}

// DefaultBundlePricer цена = сумма цен услуг со скидкой DiscountPercent,
// длительность = сумма длительностей
type DefaultBundlePricer struct{}

func (DefaultBundlePricer) Price(bundle *domain.Bundle, catalog domain.Catalog) float64 {
	total := IndividualTotal(bundle, catalog)
	discount := bundle.DiscountPercent
	if discount < 0 {
		discount = 0
	}
	if discount > domain.MaxBundleDiscountPct {
		discount = domain.MaxBundleDiscountPct
	}
	return total * (1 - discount/100)
}

func (DefaultBundlePricer) Duration(bundle *domain.Bundle, catalog domain.Catalog) int {
	total := 0
	for _, id := range bundle.ServiceIDs {
		total += mustService(catalog, id).DurationMinutes
	}
	return total
}

// IndividualTotal сумма цен услуг комплекса по отдельности
func IndividualTotal(bundle *domain.Bundle, catalog domain.Catalog) float64 {
	total := 0.0
	for _, id := range bundle.ServiceIDs {
		total += mustService(catalog, id).Price
	}
	return total
}

// mustService неразрешимый id услуги - ошибка вызывающего кода
func mustService(catalog domain.Catalog, id string) *domain.Service {
	s, ok := catalog.ServiceByID(id)
	if !ok {
		panic(fmt.Sprintf("upsell: service %q is not in catalog", id))
	}
	return s
}

func mustBundle(catalog domain.Catalog, id string) *domain.Bundle {
	b, ok := catalog.BundleByID(id)
	if !ok {
		panic(fmt.Sprintf("upsell: bundle %q is not in catalog", id))
	}
	return b
}
