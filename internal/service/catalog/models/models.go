package models

import "github.com/m04kA/SMC-SalonAdmin/internal/pricing/upsell"

// BundleResponse рекомендованный комплекс
type BundleResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ServiceIDs      []string `json:"serviceIds"`
	DiscountPercent float64  `json:"discountPercent"`
	Price           int      `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	IndividualTotal int      `json:"individualTotal"`
	Savings         int      `json:"savings"`
}

// RecommendedBundlesResponse ответ со списком комплексов
type RecommendedBundlesResponse struct {
	ServiceID string           `json:"serviceId"`
	Bundles   []BundleResponse `json:"bundles"`
}

// FromRecommendations конвертирует рекомендации в DTO
func FromRecommendations(serviceID string, recs []upsell.Recommendation) *RecommendedBundlesResponse {
	resp := &RecommendedBundlesResponse{
		ServiceID: serviceID,
		Bundles:   make([]BundleResponse, 0, len(recs)),
	}
	for _, r := range recs {
		resp.Bundles = append(resp.Bundles, BundleResponse{
			ID:              r.Bundle.ID,
			Name:            r.Bundle.Name,
			ServiceIDs:      r.Bundle.ServiceIDs,
			DiscountPercent: r.Bundle.DiscountPercent,
			Price:           r.Price,
			DurationMinutes: r.DurationMinutes,
			IndividualTotal: r.IndividualTotal,
			Savings:         r.Savings,
		})
	}
	return resp
}
