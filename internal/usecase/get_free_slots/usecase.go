package get_free_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/scheduling"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

// UseCase use case для поиска свободных окон ресурса на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	hours           BusinessHoursProvider
	step            time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// stepMinutes <= 0 заменяется на domain.DefaultSlotStepMinutes
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hours BusinessHoursProvider,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hours:           hours,
		step:            time.Duration(stepMinutes) * time.Minute,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: resource=%s, date=%s, duration=%d",
		req.ResourceID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Рабочие часы ресурса
	hours, err := uc.hours.Resolve(ctx, ptr.Ptr(req.ResourceID))
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to resolve business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve business hours: %v", ErrInternal, err)
	}

	// 3. Прошедшие дни не показываем
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now, hours.Loc()) {
		uc.logger.Warn("GetFreeSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Записи ресурса за день
	from, to := models.DayBounds(req.Date, hours.Loc())
	existing, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		ResourceID: ptr.Ptr(req.ResourceID),
		From:       ptr.Ptr(from),
		To:         ptr.Ptr(to),
	})
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Подбор окон
	duration := time.Duration(req.DurationMinutes) * time.Minute
	free := scheduling.FreeSlots(req.ResourceID, from, duration, uc.step, hours, existing, now)

	slots := make([]Slot, 0, len(free))
	for _, s := range free {
		slots = append(slots, Slot{Start: s.Start, End: s.End})
	}

	uc.logger.Info("GetFreeSlots: found %d free slots for resource=%s", len(slots), req.ResourceID)

	return &Response{
		ResourceID:      req.ResourceID,
		Date:            from,
		DurationMinutes: req.DurationMinutes,
		OpenHour:        hours.OpenHour,
		CloseHour:       hours.CloseHour,
		Slots:           slots,
	}, nil
}
