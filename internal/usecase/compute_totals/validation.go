package compute_totals

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BaseServiceID) == "" {
		return fmt.Errorf("%w: baseServiceId is required", ErrInvalidInput)
	}

	if !req.Selection.IsExclusive() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrBundleSelected)
	}

	if (req.ResourceID == nil) != (req.Start == nil) {
		return fmt.Errorf("%w: resourceId and start must be set together", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(req.Selection.AdditionalServiceIDs))
	for _, id := range req.Selection.AdditionalServiceIDs {
		if id == req.BaseServiceID {
			return fmt.Errorf("%w: base service cannot be added twice", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate additional service %s", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// requiredFeatures платные функции, задействованные выбором
func requiredFeatures(sel domain.UpsellSelection) []domain.Feature {
	features := make([]domain.Feature, 0, 3)
	if sel.HasBundle() {
		features = append(features, domain.FeatureBundles)
	}
	if sel.TimeExtension {
		features = append(features, domain.FeatureTimeExtension)
	}
	if len(sel.AdditionalServiceIDs) > 0 {
		features = append(features, domain.FeatureAdditionalServices)
	}
	return features
}

// checkReferences все id выбора есть в каталоге, дополнительные услуги активны
// Активность услуг внутри комплекса не проверяется: ее определяет сам комплекс
func checkReferences(catalog domain.Catalog, sel domain.UpsellSelection) error {
	for _, id := range sel.AdditionalServiceIDs {
		if s, ok := catalog.ServiceByID(id); !ok || !s.IsActive {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
	}
	if sel.HasBundle() {
		if _, ok := catalog.BundleByID(*sel.SelectedBundleID); !ok {
			return fmt.Errorf("%w: %s", ErrBundleNotFound, *sel.SelectedBundleID)
		}
	}
	return nil
}
