package agenda

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonhub/SH-BookingService/internal/domain"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	businessClient "github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/service/agenda/models"
)

// Service сервис для работы с настройками расписания
type Service struct {
	agendaRepo     AgendaRepository
	businessClient BusinessServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса настроек расписания
func NewService(
	agendaRepo AgendaRepository,
	businessClient BusinessServiceClient,
	logger Logger,
) *Service {
	return &Service{
		agendaRepo:     agendaRepo,
		businessClient: businessClient,
		logger:         logger,
	}
}

// GetSettings получает настройки расписания бизнеса
// При первом обращении владельца настройки создаются с дефолтными значениями
// Доступно только владельцу бизнеса
func (s *Service) GetSettings(ctx context.Context, businessID int64, userID int64) (*models.AgendaSettingsResponse, error) {
	s.logger.Info("GetSettings: fetching agenda settings for business=%d, user=%d", businessID, userID)

	if err := s.checkOwnerAccess(ctx, businessID, userID); err != nil {
		return nil, err
	}

	settings, err := s.agendaRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, agendaRepo.ErrSettingsNotFound) {
			s.logger.Error("GetSettings: repository error for business=%d: %v", businessID, err)
			return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
		}

		// Ленивое создание: настройки появляются при первом обращении
		settings, err = s.agendaRepo.Create(ctx, domain.DefaultAgendaSettings(businessID))
		if err != nil {
			s.logger.Error("GetSettings: failed to create default settings for business=%d: %v", businessID, err)
			return nil, fmt.Errorf("%w: GetSettings - failed to create defaults: %v", ErrInternal, err)
		}
		s.logger.Info("GetSettings: created default agenda settings for business=%d", businessID)
	}

	return models.FromDomainSettings(settings), nil
}

// UpdateSettings обновляет настройки расписания бизнеса
// Доступно только владельцу бизнеса
func (s *Service) UpdateSettings(ctx context.Context, businessID int64, req *models.UpdateAgendaSettingsRequest) (*models.AgendaSettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating agenda settings for business=%d, user=%d", businessID, req.UserID)

	if err := s.checkOwnerAccess(ctx, businessID, req.UserID); err != nil {
		return nil, err
	}

	settings, err := req.ToDomain(businessID)
	if err != nil {
		s.logger.Warn("UpdateSettings: invalid time format for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateSettings(settings); err != nil {
		s.logger.Warn("UpdateSettings: validation failed for business=%d: %v", businessID, err)
		return nil, err
	}

	// Настройки могли ещё не существовать: обновление через ленивое создание
	if _, err := s.agendaRepo.GetByBusinessID(ctx, businessID); err != nil {
		if !errors.Is(err, agendaRepo.ErrSettingsNotFound) {
			s.logger.Error("UpdateSettings: repository error for business=%d: %v", businessID, err)
			return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
		}
		if _, err := s.agendaRepo.Create(ctx, domain.DefaultAgendaSettings(businessID)); err != nil {
			s.logger.Error("UpdateSettings: failed to create settings for business=%d: %v", businessID, err)
			return nil, fmt.Errorf("%w: UpdateSettings - failed to create: %v", ErrInternal, err)
		}
	}

	updated, err := s.agendaRepo.Update(ctx, businessID, settings)
	if err != nil {
		s.logger.Error("UpdateSettings: failed to update settings for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: UpdateSettings - failed to update: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: successfully updated agenda settings for business=%d", businessID)
	return models.FromDomainSettings(updated), nil
}

// validateSettings проверяет настройки на границе записи
// Пустое рабочее окно (start >= end) допустимо: это валидное состояние
// "салон закрыт", сетка слотов при нём пустая
func validateSettings(settings *domain.AgendaSettings) error {
	if err := settings.StartHour.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start hour: %v", ErrInvalidInput, err)
	}
	if err := settings.EndHour.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end hour: %v", ErrInvalidInput, err)
	}

	validDuration := false
	for _, g := range domain.AllowedGranularities {
		if settings.ServiceDuration == g {
			validDuration = true
			break
		}
	}
	if !validDuration {
		return fmt.Errorf("%w: service duration must be one of %v", ErrInvalidInput, domain.AllowedGranularities)
	}

	if len(settings.WorkingDays) == 0 {
		return fmt.Errorf("%w: working days must not be empty", ErrInvalidInput)
	}
	seen := make(map[int64]bool, len(settings.WorkingDays))
	for _, d := range settings.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: working day must be between 0 and 6", ErrInvalidInput)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate working day %d", ErrInvalidInput, d)
		}
		seen[d] = true
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем бизнеса
func (s *Service) checkOwnerAccess(ctx context.Context, businessID int64, userID int64) error {
	business, err := s.businessClient.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			s.logger.Warn("checkOwnerAccess: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get business: %v", ErrInternal, err)
	}

	if business.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of business=%d", userID, businessID)
		return ErrAccessDenied
	}

	return nil
}
