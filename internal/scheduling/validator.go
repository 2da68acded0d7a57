// Package scheduling проверяет, можно ли создать запись или перенести существующую
// на заданный интервал и ресурс. Функции чистые: снимок записей и правила
// передаются явно, применение результата остается на вызывающей стороне.
package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// Candidate предлагаемый интервал записи
type Candidate struct {
	AppointmentID string                   // пусто при создании
	CurrentStatus domain.AppointmentStatus // пусто при создании
	ResourceID    string
	Start         time.Time
	End           time.Time
}

// IsMove кандидат - перенос существующей записи
func (c Candidate) IsMove() bool {
	return c.AppointmentID != ""
}

// Rules правила валидации
type Rules struct {
	BusinessHours domain.BusinessHours
}

// DefaultRules рабочие часы 9:00-18:00 UTC
func DefaultRules() Rules {
	return Rules{BusinessHours: domain.DefaultBusinessHours(time.UTC)}
}

// Validate проверяет кандидата против существующих записей и правил
// Возвращает nil или *ValidationError
func Validate(candidate Candidate, existing []*domain.Appointment, rules Rules) error {
	// Отмененная запись неизменяема независимо от нового времени
	if candidate.CurrentStatus == domain.StatusCancelled {
		return &ValidationError{Kind: KindImmutableCancelled}
	}

	if !candidate.Start.Before(candidate.End) {
		return &ValidationError{Kind: KindInvalidTimeRange}
	}

	if !WithinBusinessHours(candidate.Start, candidate.End, rules.BusinessHours) {
		return &ValidationError{Kind: KindOutsideBusinessHours}
	}

	if conflict := FindConflict(candidate, existing); conflict != nil {
		return &ValidationError{Kind: KindTimeConflict, ConflictingID: conflict.ID}
	}

	return nil
}

// WithinBusinessHours интервал целиком лежит в [open:00, close:00) одного календарного дня
// в часовом поясе салона. Окончание ровно в close:00 допустимо.
func WithinBusinessHours(start, end time.Time, hours domain.BusinessHours) bool {
	loc := hours.Loc()
	start = start.In(loc)
	end = end.In(loc)

	y, m, d := start.Date()
	dayOpen := time.Date(y, m, d, hours.OpenHour, 0, 0, 0, loc)
	dayClose := time.Date(y, m, d, hours.CloseHour, 0, 0, 0, loc)

	return !start.Before(dayOpen) && !end.After(dayClose)
}

// FindConflict возвращает первую запись на том же ресурсе, пересекающуюся с кандидатом
// Сама переносимая запись и отмененные записи не учитываются
func FindConflict(candidate Candidate, existing []*domain.Appointment) *domain.Appointment {
	for _, a := range existing {
		if a.ResourceID != candidate.ResourceID {
			continue
		}
		if candidate.IsMove() && a.ID == candidate.AppointmentID {
			continue
		}
		if !a.OccupiesResource() {
			continue
		}
		if Overlaps(candidate.Start, candidate.End, a.Start, a.End) {
			return a
		}
	}
	return nil
}

// Overlaps полуоткрытые интервалы [aStart, aEnd) и [bStart, bEnd) пересекаются
// Касание концами пересечением не считается
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FreeAfter свободен ли ресурс в течение d сразу после end
// Используется для предложения продления записи на соседний слот
func FreeAfter(resourceID, excludeID string, end time.Time, d time.Duration, existing []*domain.Appointment) bool {
	probe := Candidate{
		AppointmentID: excludeID,
		ResourceID:    resourceID,
		Start:         end,
		End:           end.Add(d),
	}
	return FindConflict(probe, existing) == nil
}
