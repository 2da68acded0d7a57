package domain

import "time"

// BusinessHours рабочие часы салона [OpenHour:00, CloseHour:00)
type BusinessHours struct {
	OpenHour  int
	CloseHour int
	Location  *time.Location // nil = UTC
}

// Loc возвращает часовой пояс салона
func (h BusinessHours) Loc() *time.Location {
	if h.Location == nil {
		return time.UTC
	}
	return h.Location
}

// IsValid проверяет границы часов
func (h BusinessHours) IsValid() bool {
	return h.OpenHour >= 0 && h.CloseHour <= 24 && h.OpenHour < h.CloseHour
}

// DefaultBusinessHours 9:00-18:00
func DefaultBusinessHours(loc *time.Location) BusinessHours {
	return BusinessHours{
		OpenHour:  DefaultOpenHour,
		CloseHour: DefaultCloseHour,
		Location:  loc,
	}
}

// SalonSettings настройки рабочих часов
// Поддерживает иерархию:
// 1. Конкретный ресурс (resource_id)
// 2. Весь салон (resource_id = NULL)
type SalonSettings struct {
	ID         int64
	ResourceID *string // NULL = настройки для всего салона
	OpenHour   int
	CloseHour  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsGlobal настройки для всего салона
func (s *SalonSettings) IsGlobal() bool {
	return s.ResourceID == nil
}

// BusinessHours переводит настройки в правила валидации
func (s *SalonSettings) BusinessHours(loc *time.Location) BusinessHours {
	return BusinessHours{
		OpenHour:  s.OpenHour,
		CloseHour: s.CloseHour,
		Location:  loc,
	}
}
