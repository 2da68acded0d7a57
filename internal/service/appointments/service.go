package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonAdmin/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	repo      AppointmentRepository
	txManager TransactionManager
	location  *time.Location
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	repo AppointmentRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
		location:  location,
		logger:    logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}

	return models.FromDomainAppointment(a), nil
}

// List получает записи с фильтрацией по ресурсу, дню и статусу
// Отмененные записи по умолчанию не возвращаются
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter(s.location)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

// Cancel отменяет запись. Отмена терминальна: повторная отмена возвращает ErrAlreadyCancelled,
// завершенную запись отменить нельзя
func (s *Service) Cancel(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	var result *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("Cancel", id, err)
		}

		if a.IsCancelled() {
			s.logger.Warn("Cancel: appointment id=%s already cancelled", id)
			return ErrAlreadyCancelled
		}
		if !a.CanBeCancelled() {
			s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, a.Status)
			return ErrCannotCancel
		}

		result, err = s.repo.UpdateStatus(ctx, id, domain.StatusCancelled)
		if err != nil {
			return s.mapRepoError("Cancel", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: appointment id=%s cancelled", id)
	return models.FromDomainAppointment(result), nil
}

// Confirm подтверждает ожидающую запись (PENDING -> CONFIRMED)
func (s *Service) Confirm(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("Confirm: confirming appointment id=%s", id)

	var result *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("Confirm", id, err)
		}

		if !a.CanBeConfirmed() {
			s.logger.Warn("Confirm: appointment id=%s cannot be confirmed, status=%s", id, a.Status)
			return ErrCannotConfirm
		}

		result, err = s.repo.UpdateStatus(ctx, id, domain.StatusConfirmed)
		if err != nil {
			return s.mapRepoError("Confirm", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: appointment id=%s confirmed", id)
	return models.FromDomainAppointment(result), nil
}

// Complete отмечает подтвержденную запись как оказанную
func (s *Service) Complete(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%s", id)

	var result *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("Complete", id, err)
		}

		if !a.CanBeCompleted() {
			s.logger.Warn("Complete: appointment id=%s cannot be completed, status=%s", id, a.Status)
			return ErrCannotComplete
		}

		result, err = s.repo.UpdateStatus(ctx, id, domain.StatusCompleted)
		if err != nil {
			return s.mapRepoError("Complete", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: appointment id=%s completed", id)
	return models.FromDomainAppointment(result), nil
}

func (s *Service) mapRepoError(op, id string, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%s not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
