package get_price_heatmap

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// ServiceRepository услуги каталога
type ServiceRepository interface {
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// PlanProvider тариф администратора
type PlanProvider interface {
	GetPlanWithGracefulDegradation(ctx context.Context, userID string) domain.PlanTier
}

// FeatureRecorder учет отказов по тарифу в метриках
type FeatureRecorder interface {
	ObserveFeatureLocked(feature string)
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
