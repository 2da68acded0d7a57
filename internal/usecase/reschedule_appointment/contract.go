package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateTime(ctx context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error)
}

// BusinessHoursProvider действующие часы работы ресурса
type BusinessHoursProvider interface {
	Resolve(ctx context.Context, resourceID *string) (domain.BusinessHours, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ValidationRecorder учет отказов валидации в метриках
type ValidationRecorder interface {
	ObserveValidationFailure(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
