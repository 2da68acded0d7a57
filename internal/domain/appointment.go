package domain

import "time"

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusPending   AppointmentStatus = "PENDING"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// IsValid проверяет, что статус входит в допустимый набор
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Client клиент салона (денормализован в запись)
type Client struct {
	ID    string
	Name  string
	Phone *string
	Email *string
	Notes *string
}

// Appointment запись клиента к мастеру / в кабинет / на оборудование
// Один ресурс на запись, интервал [Start, End) полуоткрытый
type Appointment struct {
	ID         string
	Client     Client
	ResourceID string
	Title      string
	Start      time.Time
	End        time.Time
	Status     AppointmentStatus
	Price      *float64
	Notes      *string
	Color      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration длительность записи
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// IsCancelled запись отменена (терминальный статус)
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesResource запись занимает ресурс (все, кроме отмененных)
func (a *Appointment) OccupiesResource() bool {
	return !a.IsCancelled()
}

// CanBeMoved отмененную запись перемещать нельзя
func (a *Appointment) CanBeMoved() bool {
	return !a.IsCancelled()
}

// CanBeCancelled можно отменить только подтвержденную или ожидающую запись
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed || a.Status == StatusPending
}

// CanBeConfirmed подтвердить можно только ожидающую запись
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeCompleted завершить можно только подтвержденную запись
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed
}

// AppointmentUpdate изменяемые при переносе поля
type AppointmentUpdate struct {
	Start      time.Time
	End        time.Time
	ResourceID *string // nil - остаться на текущем ресурсе
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	ResourceID       *string            // Фильтр по ресурсу (опционально)
	From             *time.Time         // Записи, заканчивающиеся позже From
	To               *time.Time         // Записи, начинающиеся раньше To
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные записи
	ForUpdate        bool               // Блокировать строки (только внутри транзакции)
}
