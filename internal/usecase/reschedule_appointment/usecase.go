package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonAdmin/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonAdmin/internal/scheduling"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

// UseCase use case для переноса записи на другое время и/или ресурс
type UseCase struct {
	appointmentRepo AppointmentRepository
	hours           BusinessHoursProvider
	txManager       TransactionManager
	recorder        ValidationRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hours BusinessHoursProvider,
	txManager TransactionManager,
	recorder ValidationRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hours:           hours,
		txManager:       txManager,
		recorder:        recorder,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute переносит запись. Меняются только время и ресурс,
// при отказе валидации запись остается без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("RescheduleAppointment: id=%s, start=%s, end=%s, resource=%v",
		req.AppointmentID, req.Start.Format("2006-01-02T15:04"), req.End.Format("2006-01-02T15:04"), req.ResourceID)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.AppointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if req.ResourceID != nil && strings.TrimSpace(*req.ResourceID) == "" {
		return nil, fmt.Errorf("%w: resourceId must not be empty", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 2. Проверка и перенос в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Переносимая запись (с блокировкой строки)
		current, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Перенос в прошлое запрещен (отмененную запись отклонит scheduling.Validate)
		if !current.IsCancelled() && req.Start.Before(now) {
			uc.logger.Warn("RescheduleAppointment: id=%s start=%s is in the past",
				current.ID, req.Start.Format("2006-01-02T15:04"))
			return fmt.Errorf("%w: start %s is before %s",
				ErrPastAppointment, req.Start.Format(time.RFC3339), now.Format(time.RFC3339))
		}

		targetResource := current.ResourceID
		if req.ResourceID != nil {
			targetResource = *req.ResourceID
		}

		// 2.3. Рабочие часы целевого ресурса
		hours, err := uc.hours.Resolve(txCtx, ptr.Ptr(targetResource))
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to resolve business hours: %v", err)
			return fmt.Errorf("%w: failed to resolve business hours: %v", ErrInternal, err)
		}

		// 2.4. Записи целевого ресурса в новом интервале
		existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			ResourceID: ptr.Ptr(targetResource),
			From:       ptr.Ptr(req.Start),
			To:         ptr.Ptr(req.End),
			ForUpdate:  true,
		})
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.5. Валидация переноса (сама запись в конфликтах не участвует)
		candidate := scheduling.Candidate{
			AppointmentID: current.ID,
			CurrentStatus: current.Status,
			ResourceID:    targetResource,
			Start:         req.Start,
			End:           req.End,
		}
		if err := scheduling.Validate(candidate, existing, scheduling.Rules{BusinessHours: hours}); err != nil {
			if vErr, ok := scheduling.AsValidationError(err); ok && uc.recorder != nil {
				uc.recorder.ObserveValidationFailure(string(vErr.Kind))
			}
			uc.logger.Warn("RescheduleAppointment: rejected id=%s: %v", current.ID, err)
			return err
		}

		// 2.6. Применяем перенос
		updated, err := uc.appointmentRepo.UpdateTime(txCtx, current.ID, domain.AppointmentUpdate{
			Start:      req.Start,
			End:        req.End,
			ResourceID: req.ResourceID,
		})
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%s: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: moved appointment id=%s to resource=%s", result.ID, result.ResourceID)
	return models.FromDomainAppointment(result), nil
}
