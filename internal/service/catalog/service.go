package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	repo        CatalogRepository
	recommender BundleRecommender
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, recommender BundleRecommender, logger Logger) *Service {
	return &Service{
		repo:        repo,
		recommender: recommender,
		logger:      logger,
	}
}

// RecommendedBundles подбирает комплексы к базовой услуге
func (s *Service) RecommendedBundles(ctx context.Context, serviceID string) (*models.RecommendedBundlesResponse, error) {
	s.logger.Info("RecommendedBundles: service=%s", serviceID)

	catalog, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.logger.Error("RecommendedBundles: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: RecommendedBundles - load catalog: %v", ErrInternal, err)
	}

	if _, ok := catalog.ServiceByID(serviceID); !ok {
		s.logger.Warn("RecommendedBundles: service=%s not found", serviceID)
		return nil, ErrServiceNotFound
	}

	recs := s.recommender.RecommendBundles(serviceID, Resolvable(catalog, s.logger), domain.MaxRecommendedBundles)

	s.logger.Info("RecommendedBundles: %d bundles for service=%s", len(recs), serviceID)
	return models.FromRecommendations(serviceID, recs), nil
}

// Resolvable убирает из снимка комплексы со ссылками на отсутствующие услуги
func Resolvable(catalog domain.Catalog, logger Logger) domain.Catalog {
	bundles := make([]*domain.Bundle, 0, len(catalog.Bundles))
	for _, b := range catalog.Bundles {
		if !catalog.IsResolvable(b) {
			logger.Warn("Catalog: bundle=%s references unknown services, skipped", b.ID)
			continue
		}
		bundles = append(bundles, b)
	}
	return domain.Catalog{Services: catalog.Services, Bundles: bundles}
}
