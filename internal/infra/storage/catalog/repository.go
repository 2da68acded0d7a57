package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAdmin/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг и комплексов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceByID получает услугу по ID (в том числе неактивную)
func (r *Repository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price", "is_active").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price, &s.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Snapshot загружает весь каталог одним снимком для расчета цены
func (r *Repository) Snapshot(ctx context.Context) (domain.Catalog, error) {
	services, err := r.listServices(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}

	bundles, err := r.listBundles(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}

	return domain.Catalog{Services: services, Bundles: bundles}, nil
}

func (r *Repository) listServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price", "is_active").
		From("services").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price, &s.IsActive); err != nil {
			return nil, fmt.Errorf("%w: listServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

func (r *Repository) listBundles(ctx context.Context) ([]*domain.Bundle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "service_ids", "discount_percent", "is_active").
		From("bundles").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listBundles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listBundles - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bundles := make([]*domain.Bundle, 0)
	for rows.Next() {
		var b domain.Bundle
		if err := rows.Scan(&b.ID, &b.Name, pq.Array(&b.ServiceIDs), &b.DiscountPercent, &b.IsActive); err != nil {
			return nil, fmt.Errorf("%w: listBundles - scan row: %v", ErrScanRow, err)
		}
		bundles = append(bundles, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listBundles - rows error: %v", ErrScanRow, err)
	}

	return bundles, nil
}
