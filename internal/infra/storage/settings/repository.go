package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAdmin/pkg/psqlbuilder"
)

const table = "salon_settings"

// Repository репозиторий рабочих часов салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает настройки (общие для салона, если ResourceID = nil)
func (r *Repository) Create(ctx context.Context, s *domain.SalonSettings) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("resource_id", "open_hour", "close_hour").
		Values(s.ResourceID, s.OpenHour, s.CloseHour).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByResource получает настройки ровно указанного уровня:
// resourceID = nil - общие настройки салона
func (r *Repository) GetByResource(ctx context.Context, resourceID *string) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "resource_id", "open_hour", "close_hour", "created_at", "updated_at").
		From(table)

	// Фильтрация по resource_id (NULL или конкретное значение)
	if resourceID == nil {
		builder = builder.Where(squirrel.Eq{"resource_id": nil})
	} else {
		builder = builder.Where(squirrel.Eq{"resource_id": *resourceID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SalonSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ResourceID,
		&s.OpenHour,
		&s.CloseHour,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetWithHierarchy получает настройки с учетом приоритетов:
// 1. Настройки конкретного ресурса
// 2. Общие настройки салона
//
// Если не найдено ни на одном уровне, возвращает ErrSettingsNotFound
func (r *Repository) GetWithHierarchy(ctx context.Context, resourceID *string) (*domain.SalonSettings, error) {
	if resourceID != nil {
		s, err := r.GetByResource(ctx, resourceID)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrSettingsNotFound) {
			return nil, fmt.Errorf("%w: GetWithHierarchy - level 1 (resource): %v", ErrExecQuery, err)
		}
	}

	s, err := r.GetByResource(ctx, nil)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 2 (salon): %v", ErrExecQuery, err)
	}

	return nil, ErrSettingsNotFound
}

// Update обновляет часы работы
func (r *Repository) Update(ctx context.Context, id int64, openHour, closeHour int) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("open_hour", openHour).
		Set("close_hour", closeHour).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, resource_id, open_hour, close_hour, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.SalonSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ResourceID,
		&s.OpenHour,
		&s.CloseHour,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// DeleteByResource удаляет переопределение часов для ресурса,
// после чего для него действуют общие настройки салона
func (r *Repository) DeleteByResource(ctx context.Context, resourceID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"resource_id": resourceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByResource - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByResource - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByResource - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
