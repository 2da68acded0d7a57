package reschedule_appointment

import "time"

// Request модель запроса на перенос записи (drag-and-drop в календаре)
type Request struct {
	AppointmentID string
	Start         time.Time
	End           time.Time
	ResourceID    *string // nil - остаться на текущем ресурсе
}
