package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonAdmin/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/settings/models"
)

// Service сервис рабочих часов салона
type Service struct {
	repo      SettingsRepository
	txManager TransactionManager
	defaults  domain.BusinessHours
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
// defaults применяются, если в БД нет ни настроек ресурса, ни настроек салона
func NewService(
	repo SettingsRepository,
	txManager TransactionManager,
	defaults domain.BusinessHours,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		defaults:  defaults,
		logger:    logger,
	}
}

// Resolve возвращает действующие часы работы для ресурса
// Приоритет: ресурс > салон > значения по умолчанию
func (s *Service) Resolve(ctx context.Context, resourceID *string) (domain.BusinessHours, error) {
	hours, _, err := s.resolve(ctx, resourceID)
	return hours, err
}

// GetBusinessHours действующие часы работы с указанием уровня, на котором они заданы
func (s *Service) GetBusinessHours(ctx context.Context, resourceID *string) (*models.BusinessHoursResponse, error) {
	hours, level, err := s.resolve(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainHours(resourceID, hours, level), nil
}

func (s *Service) resolve(ctx context.Context, resourceID *string) (domain.BusinessHours, string, error) {
	settings, err := s.repo.GetWithHierarchy(ctx, resourceID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return s.defaults, models.LevelDefault, nil
		}
		s.logger.Error("Resolve: repository error for resource=%v: %v", resourceID, err)
		return domain.BusinessHours{}, "", fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	level := models.LevelSalon
	if !settings.IsGlobal() {
		level = models.LevelResource
	}

	return settings.BusinessHours(s.defaults.Loc()), level, nil
}

// Update создает или обновляет часы работы салона или отдельного ресурса
func (s *Service) Update(ctx context.Context, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("Update: setting business hours %d-%d for resource=%v", req.OpenHour, req.CloseHour, req.ResourceID)

	// 1. Валидируем часы
	hours := domain.BusinessHours{OpenHour: req.OpenHour, CloseHour: req.CloseHour, Location: s.defaults.Loc()}
	if !hours.IsValid() {
		s.logger.Warn("Update: invalid hours %d-%d", req.OpenHour, req.CloseHour)
		return nil, fmt.Errorf("%w: openHour must be less than closeHour, both within 0..24", ErrInvalidInput)
	}
	if req.ResourceID != nil && *req.ResourceID == "" {
		return nil, fmt.Errorf("%w: resourceId must not be empty", ErrInvalidInput)
	}

	// 2. Обновляем существующую запись уровня или создаем новую
	var saved *domain.SalonSettings
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByResource(ctx, req.ResourceID)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return fmt.Errorf("%w: Update - get existing: %v", ErrInternal, err)
		}

		if existing != nil {
			saved, err = s.repo.Update(ctx, existing.ID, req.OpenHour, req.CloseHour)
		} else {
			saved, err = s.repo.Create(ctx, &domain.SalonSettings{
				ResourceID: req.ResourceID,
				OpenHour:   req.OpenHour,
				CloseHour:  req.CloseHour,
			})
		}
		if err != nil {
			return fmt.Errorf("%w: Update - save: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: %v", err)
		return nil, err
	}

	level := models.LevelSalon
	if !saved.IsGlobal() {
		level = models.LevelResource
	}

	s.logger.Info("Update: business hours saved, settings id=%d", saved.ID)
	return models.FromDomainHours(saved.ResourceID, saved.BusinessHours(s.defaults.Loc()), level), nil
}

// ResetResource удаляет переопределение часов ресурса
func (s *Service) ResetResource(ctx context.Context, resourceID string) error {
	s.logger.Info("ResetResource: removing override for resource=%s", resourceID)

	if err := s.repo.DeleteByResource(ctx, resourceID); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return ErrSettingsNotFound
		}
		s.logger.Error("ResetResource: repository error for resource=%s: %v", resourceID, err)
		return fmt.Errorf("%w: ResetResource - repository error: %v", ErrInternal, err)
	}

	return nil
}
