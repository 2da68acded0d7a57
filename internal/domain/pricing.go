package domain

// Confidence качественная оценка надежности прогноза спроса
type Confidence string

const (
	ConfidenceLow  Confidence = "low"
	ConfidenceMid  Confidence = "mid"
	ConfidenceHigh Confidence = "high"
)

// PlanTier тариф администратора
type PlanTier string

const (
	PlanFree    PlanTier = "free"
	PlanBasic   PlanTier = "basic"
	PlanPro     PlanTier = "pro"
	PlanPremium PlanTier = "premium"
)

// IsValid проверяет, что тариф известен
func (p PlanTier) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPro, PlanPremium:
		return true
	}
	return false
}

// Feature платная функция
type Feature string

const (
	FeatureBundles            Feature = "bundles"
	FeatureTimeExtension      Feature = "time_extension"
	FeatureAdditionalServices Feature = "additional_services"
	FeatureSmartPricing       Feature = "smart_pricing"
)

// Allows доступна ли функция на тарифе
// Все апсейл-функции и умное ценообразование открыты только на pro и premium
func (p PlanTier) Allows(_ Feature) bool {
	return p == PlanPro || p == PlanPremium
}
