package compute_totals

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/upsell"
	"github.com/m04kA/SMC-SalonAdmin/internal/scheduling"
	catalogService "github.com/m04kA/SMC-SalonAdmin/internal/service/catalog"
	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

// UseCase use case расчета итоговой цены и длительности с апсейлом
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	plans           PlanProvider
	calculator      TotalsCalculator
	recorder        FeatureRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	plans PlanProvider,
	calculator TotalsCalculator,
	recorder FeatureRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		plans:           plans,
		calculator:      calculator,
		recorder:        recorder,
		logger:          logger,
	}
}

// Execute выполняет расчет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeTotals: user=%s, service=%s, extension=%t, additional=%v, bundle=%v",
		req.UserID, req.BaseServiceID, req.Selection.TimeExtension,
		req.Selection.AdditionalServiceIDs, req.Selection.SelectedBundleID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ComputeTotals: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка тарифа
	plan := uc.plans.GetPlanWithGracefulDegradation(ctx, req.UserID)
	for _, feature := range requiredFeatures(req.Selection) {
		if plan.Allows(feature) {
			continue
		}
		if uc.recorder != nil {
			uc.recorder.ObserveFeatureLocked(string(feature))
		}
		uc.logger.Warn("ComputeTotals: feature %s is locked for user=%s on plan %s", feature, req.UserID, plan)
		return nil, &FeatureLockedError{Feature: feature, Plan: plan}
	}

	// 3. Каталог без неразрешимых комплексов
	snapshot, err := uc.catalogRepo.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("ComputeTotals: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}
	catalog := catalogService.Resolvable(snapshot, uc.logger)

	// 4. Все id должны быть в каталоге, иначе движок не сможет посчитать итог
	// Снятые с продажи услуги не предлагаются
	base, ok := catalog.ServiceByID(req.BaseServiceID)
	if !ok || !base.IsActive {
		uc.logger.Warn("ComputeTotals: base service=%s not found or inactive", req.BaseServiceID)
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.BaseServiceID)
	}
	if err := checkReferences(catalog, req.Selection); err != nil {
		uc.logger.Warn("ComputeTotals: %v", err)
		return nil, err
	}

	// 5. Расчет
	totals := uc.calculator.ComputeTotals(upsell.Input{
		BasePrice:    base.Price,
		BaseDuration: base.DurationMinutes,
		Selection:    req.Selection,
		Catalog:      catalog,
	})

	resp := &Response{
		Plan:          plan,
		BasePrice:     int(math.Round(base.Price)),
		BaseDuration:  base.DurationMinutes,
		TotalPrice:    totals.TotalPrice,
		TotalDuration: totals.TotalDuration,
		Discount:      totals.Discount,
	}

	// 6. Продление возможно, только если ресурс свободен сразу после записи
	if req.Start != nil {
		end := req.Start.Add(time.Duration(totals.TotalDuration) * time.Minute)
		resp.End = &end

		if req.Selection.TimeExtension {
			extension := time.Duration(domain.TimeExtensionMinutes) * time.Minute
			withoutExtension := end.Add(-extension)
			if err := uc.checkExtension(ctx, *req.ResourceID, ptr.Deref(req.AppointmentID, ""), withoutExtension, extension); err != nil {
				return nil, err
			}
		}
	}

	uc.logger.Info("ComputeTotals: price=%d, duration=%d, discount=%d",
		resp.TotalPrice, resp.TotalDuration, resp.Discount)
	return resp, nil
}

func (uc *UseCase) checkExtension(ctx context.Context, resourceID, excludeID string, end time.Time, d time.Duration) error {
	existing, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		ResourceID: ptr.Ptr(resourceID),
		From:       ptr.Ptr(end),
		To:         ptr.Ptr(end.Add(d)),
	})
	if err != nil {
		uc.logger.Error("ComputeTotals: failed to get appointments: %v", err)
		return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if !scheduling.FreeAfter(resourceID, excludeID, end, d, existing) {
		uc.logger.Warn("ComputeTotals: resource=%s is busy after %s", resourceID, end.Format(time.RFC3339))
		return ErrExtensionUnavailable
	}
	return nil
}
