package get_free_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}

// isDateInPast календарный день date целиком в прошлом относительно now (в поясе loc)
func isDateInPast(date, now time.Time, loc *time.Location) bool {
	y, m, d := date.Date()
	n := now.In(loc)
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return day.Before(today)
}
