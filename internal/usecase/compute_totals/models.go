package compute_totals

import (
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// Request модель запроса на расчет итога экрана подтверждения
type Request struct {
	UserID        string // Администратор, по тарифу которого проверяется доступ
	BaseServiceID string
	Selection     domain.UpsellSelection

	// Заполняются, когда итог считается для конкретного окна:
	// тогда продление проверяется на свободное время сразу после записи
	ResourceID    *string
	Start         *time.Time
	AppointmentID *string // переносимая запись, не мешает сама себе
}

// Response модель ответа
type Response struct {
	Plan          domain.PlanTier
	BasePrice     int
	BaseDuration  int
	TotalPrice    int
	TotalDuration int
	Discount      int
	End           *time.Time // окончание с учетом выбора, если задан Start
}
