package compute_totals

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("compute_totals: invalid input data")

	// ErrServiceNotFound возвращается, если услуги нет в каталоге
	ErrServiceNotFound = errors.New("compute_totals: service not found")

	// ErrBundleNotFound возвращается, если комплекса нет в каталоге
	ErrBundleNotFound = errors.New("compute_totals: bundle not found")

	// ErrFeatureLocked возвращается, если функция недоступна на тарифе
	ErrFeatureLocked = errors.New("compute_totals: feature is not available on current plan")

	// ErrExtensionUnavailable возвращается, если сразу после записи ресурс занят
	ErrExtensionUnavailable = errors.New("compute_totals: no free slot for time extension")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_totals: internal error")
)

// FeatureLockedError недоступная на тарифе функция
type FeatureLockedError struct {
	Feature domain.Feature
	Plan    domain.PlanTier
}

func (e *FeatureLockedError) Error() string {
	return fmt.Sprintf("%v: %s (plan %s)", ErrFeatureLocked, e.Feature, e.Plan)
}

// Is позволяет писать errors.Is(err, ErrFeatureLocked)
func (e *FeatureLockedError) Is(target error) bool {
	return target == ErrFeatureLocked
}
