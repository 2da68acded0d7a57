package compute_totals

import (
	"context"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/upsell"
)

// CatalogRepository снимок каталога услуг и комплексов
type CatalogRepository interface {
	Snapshot(ctx context.Context) (domain.Catalog, error)
}

// AppointmentRepository записи ресурса, нужные для проверки продления
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// PlanProvider тариф администратора
// При недоступности сервиса тарифов возвращает free
type PlanProvider interface {
	GetPlanWithGracefulDegradation(ctx context.Context, userID string) domain.PlanTier
}

// TotalsCalculator движок расчета апсейла
type TotalsCalculator interface {
	ComputeTotals(in upsell.Input) domain.Totals
}

// FeatureRecorder учет отказов по тарифу в метриках
type FeatureRecorder interface {
	ObserveFeatureLocked(feature string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
