package upsell

import (
	"sort"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// Recommendation комплекс, предлагаемый к базовой услуге
type Recommendation struct {
	Bundle          *domain.Bundle
	Price           int
	DurationMinutes int
	IndividualTotal int
	Savings         int
}

// RecommendBundles подбирает до limit активных комплексов, содержащих базовую услугу,
// по убыванию цены за одну услугу комплекса
func (e *Engine) RecommendBundles(baseServiceID string, catalog domain.Catalog, limit int) []Recommendation {
	if baseServiceID == "" || limit <= 0 {
		return []Recommendation{}
	}

	candidates := make([]*domain.Bundle, 0)
	for _, b := range catalog.Bundles {
		if !b.IsActive || len(b.ServiceIDs) == 0 || !b.Contains(baseServiceID) {
			continue
		}
		candidates = append(candidates, b)
	}

	perService := func(b *domain.Bundle) float64 {
		return e.pricer.Price(b, catalog) / float64(len(b.ServiceIDs))
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return perService(candidates[i]) > perService(candidates[j])
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]Recommendation, 0, len(candidates))
	for _, b := range candidates {
		price := round(e.pricer.Price(b, catalog))
		individual := round(IndividualTotal(b, catalog))
		savings := individual - price
		if savings < 0 {
			savings = 0
		}
		result = append(result, Recommendation{
			Bundle:          b,
			Price:           price,
			DurationMinutes: e.pricer.Duration(b, catalog),
			IndividualTotal: individual,
			Savings:         savings,
		})
	}
	return result
}
