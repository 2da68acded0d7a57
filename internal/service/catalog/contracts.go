package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/upsell"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	Snapshot(ctx context.Context) (domain.Catalog, error)
}

// BundleRecommender подбор комплексов к услуге
type BundleRecommender interface {
	RecommendBundles(baseServiceID string, catalog domain.Catalog, limit int) []upsell.Recommendation
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
