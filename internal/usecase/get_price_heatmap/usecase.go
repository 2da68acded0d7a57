package get_price_heatmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAdmin/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/demand"
	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

// UseCase use case построения тепловой карты спроса и рекомендуемых цен
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	plans           PlanProvider
	recorder        FeatureRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	plans PlanProvider,
	recorder FeatureRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		plans:           plans,
		recorder:        recorder,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит карту по последним полным неделям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPriceHeatmap: user=%s, service=%s, resource=%v, weeks=%d",
		req.UserID, req.ServiceID, req.ResourceID, req.Weeks)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.ServiceID) == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	weeks := req.Weeks
	if weeks == 0 {
		weeks = domain.DefaultHeatmapWeeks
	}
	if weeks < 1 || weeks > domain.MaxHeatmapWeeks {
		return nil, fmt.Errorf("%w: weeks must be between 1 and %d", ErrInvalidInput, domain.MaxHeatmapWeeks)
	}

	// 2. Проверка тарифа
	plan := uc.plans.GetPlanWithGracefulDegradation(ctx, req.UserID)
	if !plan.Allows(domain.FeatureSmartPricing) {
		if uc.recorder != nil {
			uc.recorder.ObserveFeatureLocked(string(domain.FeatureSmartPricing))
		}
		uc.logger.Warn("GetPriceHeatmap: smart pricing is locked for user=%s on plan %s", req.UserID, plan)
		return nil, ErrFeatureLocked
	}

	// 3. Базовая цена услуги
	service, err := uc.serviceRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetPriceHeatmap: service=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetPriceHeatmap: failed to get service=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Записи за последние полные недели
	from, to := window(uc.timeProvider.Now(), weeks, uc.location)
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		ResourceID: req.ResourceID,
		From:       ptr.Ptr(from),
		To:         ptr.Ptr(to),
	})
	if err != nil {
		uc.logger.Error("GetPriceHeatmap: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Построение карты
	heatmap := demand.BuildHeatmap(demand.HeatmapInput{
		BasePrice:    service.Price,
		Appointments: appointments,
		Resources:    countResources(req.ResourceID, appointments),
		From:         from,
		Weeks:        weeks,
		Location:     uc.location,
	})

	uc.logger.Info("GetPriceHeatmap: service=%s, %d appointments, mean load=%.2f",
		req.ServiceID, len(appointments), heatmap.Summary.MeanLoad)

	return &Response{
		ServiceID:  req.ServiceID,
		ResourceID: req.ResourceID,
		BasePrice:  service.Price,
		From:       from,
		To:         to,
		Weeks:      weeks,
		Heatmap:    heatmap,
	}, nil
}

// window weeks полных недель, закончившихся в понедельник текущей недели
func window(now time.Time, weeks int, loc *time.Location) (time.Time, time.Time) {
	n := now.In(loc)
	offset := (int(n.Weekday()) + 6) % 7 // дней с понедельника
	monday := time.Date(n.Year(), n.Month(), n.Day()-offset, 0, 0, 0, 0, loc)
	return monday.AddDate(0, 0, -7*weeks), monday
}

// countResources число ресурсов, по которым нормируется загрузка
func countResources(resourceID *string, appointments []*domain.Appointment) int {
	if resourceID != nil {
		return 1
	}
	seen := make(map[string]struct{})
	for _, a := range appointments {
		seen[a.ResourceID] = struct{}{}
	}
	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}
