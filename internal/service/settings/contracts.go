package settings

import (
	"context"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// SettingsRepository интерфейс репозитория рабочих часов
type SettingsRepository interface {
	Create(ctx context.Context, s *domain.SalonSettings) (*domain.SalonSettings, error)
	GetByResource(ctx context.Context, resourceID *string) (*domain.SalonSettings, error)
	GetWithHierarchy(ctx context.Context, resourceID *string) (*domain.SalonSettings, error)
	Update(ctx context.Context, id int64, openHour, closeHour int) (*domain.SalonSettings, error)
	DeleteByResource(ctx context.Context, resourceID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
