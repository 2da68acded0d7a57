package reschedule_appointment

import (
	"time"

	rescheduleAppointment "github.com/m04kA/SMC-SalonAdmin/internal/usecase/reschedule_appointment"
)

// MoveAppointmentRequest HTTP request model
type MoveAppointmentRequest struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	ResourceID *string   `json:"resourceId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveAppointmentRequest) ToUseCaseRequest(appointmentID string) *rescheduleAppointment.Request {
	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		Start:         r.Start,
		End:           r.End,
		ResourceID:    r.ResourceID,
	}
}
