package models

import (
	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// Уровень, на котором найдены часы работы
const (
	LevelResource = "resource"
	LevelSalon    = "salon"
	LevelDefault  = "default"
)

// UpdateBusinessHoursRequest запрос на изменение часов работы
type UpdateBusinessHoursRequest struct {
	ResourceID *string `json:"resourceId,omitempty"` // nil - для всего салона
	OpenHour   int     `json:"openHour"`
	CloseHour  int     `json:"closeHour"`
}

// BusinessHoursResponse действующие часы работы
type BusinessHoursResponse struct {
	ResourceID *string `json:"resourceId,omitempty"`
	OpenHour   int     `json:"openHour"`
	CloseHour  int     `json:"closeHour"`
	Timezone   string  `json:"timezone"`
	Level      string  `json:"level"`
}

// FromDomainHours конвертирует часы в DTO
func FromDomainHours(resourceID *string, h domain.BusinessHours, level string) *BusinessHoursResponse {
	return &BusinessHoursResponse{
		ResourceID: resourceID,
		OpenHour:   h.OpenHour,
		CloseHour:  h.CloseHour,
		Timezone:   h.Loc().String(),
		Level:      level,
	}
}
