package scheduling

import (
	"errors"
	"fmt"
)

// Kind тип ошибки валидации записи
type Kind string

const (
	KindInvalidTimeRange     Kind = "InvalidTimeRange"
	KindOutsideBusinessHours Kind = "OutsideBusinessHours"
	KindImmutableCancelled   Kind = "ImmutableCancelled"
	KindTimeConflict         Kind = "TimeConflict"
)

var (
	// ErrInvalidTimeRange начало записи не раньше её окончания
	ErrInvalidTimeRange = errors.New("scheduling: start must be before end")

	// ErrOutsideBusinessHours запись выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("scheduling: outside business hours")

	// ErrImmutableCancelled отмененную запись нельзя переносить
	ErrImmutableCancelled = errors.New("scheduling: cancelled appointment cannot be moved")

	// ErrTimeConflict интервал пересекается с другой записью на том же ресурсе
	ErrTimeConflict = errors.New("scheduling: time conflict")
)

var sentinels = map[Kind]error{
	KindInvalidTimeRange:     ErrInvalidTimeRange,
	KindOutsideBusinessHours: ErrOutsideBusinessHours,
	KindImmutableCancelled:   ErrImmutableCancelled,
	KindTimeConflict:         ErrTimeConflict,
}

// ValidationError результат неуспешной проверки
// Сравнивается с сентинелами через errors.Is
type ValidationError struct {
	Kind          Kind
	ConflictingID string // заполнено только для KindTimeConflict
}

func (e *ValidationError) Error() string {
	if e.Kind == KindTimeConflict {
		return fmt.Sprintf("%v: conflicts with appointment %s", sentinels[e.Kind], e.ConflictingID)
	}
	return sentinels[e.Kind].Error()
}

// Is позволяет писать errors.Is(err, scheduling.ErrTimeConflict)
func (e *ValidationError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// AsValidationError извлекает ValidationError из цепочки ошибок
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
