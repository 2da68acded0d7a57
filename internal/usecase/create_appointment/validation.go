package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Время не проверяется: это делает scheduling.Validate
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Client.Name) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Client.Name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name is longer than %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is longer than %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if status != domain.StatusConfirmed && status != domain.StatusPending {
			return fmt.Errorf("%w: status must be CONFIRMED or PENDING", ErrInvalidInput)
		}
	}

	return nil
}

// validateStart проверяет, что запись не начинается в прошлом
func validateStart(start, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: start %s is before %s",
			ErrPastAppointment, start.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	return nil
}
