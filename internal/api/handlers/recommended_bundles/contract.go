package recommended_bundles

import (
	"context"

	"github.com/m04kA/SMC-SalonAdmin/internal/service/catalog/models"
)

type CatalogService interface {
	RecommendedBundles(ctx context.Context, serviceID string) (*models.RecommendedBundlesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
