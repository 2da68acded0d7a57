package domain

// Рабочие часы по умолчанию
const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 18
)

// Параметры апсейла
const (
	TimeExtensionMinutes  = 15
	TimeExtensionDiscount = 0.10 // 10%
	MaxRecommendedBundles = 2
)

// Параметры свободных слотов
const (
	DefaultSlotStepMinutes = 15
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
)

// Ограничения валидации
const (
	MaxNotesLength       = 500
	MaxTitleLength       = 200
	MaxClientNameLength  = 200
	MaxHeatmapWeeks      = 12
	DefaultHeatmapWeeks  = 4
	MaxBundleDiscountPct = 100
)

// Форматы времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
