package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей
type ListAppointmentsRequest struct {
	ResourceID       *string    `json:"resourceId,omitempty"`
	Date             *time.Time `json:"date,omitempty"`   // День в поясе салона (опционально)
	Status           *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
// Дата раскрывается в полуоткрытый интервал [00:00, 24:00) в поясе loc
func (r *ListAppointmentsRequest) ToDomainFilter(loc *time.Location) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		ResourceID:       r.ResourceID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Date != nil {
		from, to := DayBounds(*r.Date, loc)
		filter.From = &from
		filter.To = &to
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// DayBounds начало и конец календарного дня date в поясе loc
// Берется календарная дата date как есть, без перевода в loc
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}

// Response модели

// ClientResponse клиент записи
type ClientResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         string         `json:"id"`
	Client     ClientResponse `json:"client"`
	ResourceID string         `json:"resourceId"`
	Title      string         `json:"title"`
	Start      time.Time      `json:"start"`
	End        time.Time      `json:"end"`
	Status     string         `json:"status"`
	Price      *float64       `json:"price,omitempty"`
	Notes      *string        `json:"notes,omitempty"`
	Color      *string        `json:"color,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID: a.ID,
		Client: ClientResponse{
			ID:    a.Client.ID,
			Name:  a.Client.Name,
			Phone: a.Client.Phone,
			Email: a.Client.Email,
			Notes: a.Client.Notes,
		},
		ResourceID: a.ResourceID,
		Title:      a.Title,
		Start:      a.Start,
		End:        a.End,
		Status:     string(a.Status),
		Price:      a.Price,
		Notes:      a.Notes,
		Color:      a.Color,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}

// ToDomainStatus конвертирует строку в статус записи
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
