package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-SalonAdmin/internal/usecase/create_appointment"
)

// ClientRequest клиент записи
type ClientRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Client     ClientRequest `json:"client"`
	ResourceID string        `json:"resourceId"`
	Title      string        `json:"title"`
	Start      time.Time     `json:"start"` // RFC3339
	End        time.Time     `json:"end"`   // RFC3339
	Status     *string       `json:"status,omitempty"`
	Price      *float64      `json:"price,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
	Color      *string       `json:"color,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		Client: createAppointment.Client{
			ID:    r.Client.ID,
			Name:  r.Client.Name,
			Phone: r.Client.Phone,
			Email: r.Client.Email,
			Notes: r.Client.Notes,
		},
		ResourceID: r.ResourceID,
		Title:      r.Title,
		Start:      r.Start,
		End:        r.End,
		Status:     r.Status,
		Price:      r.Price,
		Notes:      r.Notes,
		Color:      r.Color,
	}
}
