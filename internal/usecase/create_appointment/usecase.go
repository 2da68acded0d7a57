package create_appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/scheduling"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	hours           BusinessHoursProvider
	txManager       TransactionManager
	recorder        ValidationRecorder
	newID           IDGenerator
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
		newID:           uuid.NewString,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("CreateAppointment: resource=%s, start=%s, end=%s",
		req.ResourceID, req.Start.Format("2006-01-02T15:04"), req.End.Format("2006-01-02T15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 1.1. Запись в прошлом создать нельзя
	if err := validateStart(req.Start, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Рабочие часы ресурса с учетом иерархии
		hours, err := uc.hours.Resolve(txCtx, ptr.Ptr(req.ResourceID))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to resolve business hours: %v", err)
			return fmt.Errorf("%w: failed to resolve business hours: %v", ErrInternal, err)
		}

		// 2.2. Записи ресурса, пересекающиеся с интервалом, с блокировкой
		existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			ResourceID: ptr.Ptr(req.ResourceID),
			From:       ptr.Ptr(req.Start),
			To:         ptr.Ptr(req.End),
			ForUpdate:  true,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.3. Проверка интервала, рабочих часов и конфликтов
		candidate := scheduling.Candidate{
			ResourceID: req.ResourceID,
			Start:      req.Start,
			End:        req.End,
		}
		if err := scheduling.Validate(candidate, existing, scheduling.Rules{BusinessHours: hours}); err != nil {
			if vErr, ok := scheduling.AsValidationError(err); ok && uc.recorder != nil {
				uc.recorder.ObserveValidationFailure(string(vErr.Kind))
			}
			uc.logger.Warn("CreateAppointment: rejected: %v", err)
			return err
		}

		// 2.4. Сохраняем запись
		status := domain.StatusConfirmed
		if req.Status != nil {
			status = domain.AppointmentStatus(*req.Status)
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ID: uc.newID(),
			Client: domain.Client{
				ID:    req.Client.ID,
				Name:  req.Client.Name,
				Phone: req.Client.Phone,
				Email: req.Client.Email,
				Notes: req.Client.Notes,
			},
			ResourceID: req.ResourceID,
			Title:      req.Title,
			Start:      req.Start,
			End:        req.End,
			Status:     status,
			Price:      req.Price,
			Notes:      req.Notes,
			Color:      req.Color,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s", result.ID)
	return models.FromDomainAppointment(result), nil
}
