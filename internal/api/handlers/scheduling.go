package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAdmin/internal/scheduling"
)

const (
	msgInvalidTimeRange     = "время начала должно быть раньше времени окончания"
	msgOutsideBusinessHours = "запись выходит за рабочие часы салона"
	msgImmutableCancelled   = "отмененную запись нельзя переносить"
	msgTimeConflict         = "время пересекается с другой записью"
)

// RespondValidationError отвечает на отказ проверки расписания.
// Возвращает false, если err не является ошибкой валидации
func RespondValidationError(w http.ResponseWriter, err error) bool {
	vErr, ok := scheduling.AsValidationError(err)
	if !ok {
		return false
	}

	body := ErrorResponse{Code: string(vErr.Kind)}
	status := http.StatusUnprocessableEntity

	switch vErr.Kind {
	case scheduling.KindInvalidTimeRange:
		body.Error = msgInvalidTimeRange
	case scheduling.KindOutsideBusinessHours:
		body.Error = msgOutsideBusinessHours
	case scheduling.KindImmutableCancelled:
		body.Error = msgImmutableCancelled
		status = http.StatusConflict
	case scheduling.KindTimeConflict:
		body.Error = msgTimeConflict
		body.ConflictingID = vErr.ConflictingID
		status = http.StatusConflict
	}

	RespondErrorBody(w, status, body)
	return true
}
