package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/salonhub/SH-BookingService/internal/domain"
	businessClient "github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг и мастеров
type Service struct {
	serviceRepo    ServiceRepository
	stylistRepo    StylistRepository
	businessClient BusinessServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	stylistRepo StylistRepository,
	businessClient BusinessServiceClient,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:    serviceRepo,
		stylistRepo:    stylistRepo,
		businessClient: businessClient,
		logger:         logger,
	}
}

// CreateService создает услугу
// Доступно только владельцу бизнеса
func (s *Service) CreateService(ctx context.Context, businessID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service %q for business=%d, user=%d", req.Name, businessID, req.UserID)

	if err := s.checkOwnerAccess(ctx, businessID, req.UserID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: service name too long", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomain(businessID))
	if err != nil {
		s.logger.Error("CreateService: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d for business=%d", created.ID, businessID)
	return models.FromDomainService(created), nil
}

// ListServices получает услуги бизнеса
// Публичный вызов возвращает только активные услуги; владелец видит все
func (s *Service) ListServices(ctx context.Context, businessID int64, userID *int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for business=%d", businessID)

	activeOnly := true
	if userID != nil {
		if err := s.checkOwnerAccess(ctx, businessID, *userID); err != nil {
			return nil, err
		}
		activeOnly = false
	}

	services, err := s.serviceRepo.ListByBusiness(ctx, businessID, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services for business=%d", len(services), businessID)
	return models.FromDomainServiceList(services), nil
}

// CreateStylist создает мастера
// Доступно только владельцу бизнеса
func (s *Service) CreateStylist(ctx context.Context, businessID int64, req *models.CreateStylistRequest) (*models.StylistResponse, error) {
	s.logger.Info("CreateStylist: creating stylist %q for business=%d, user=%d", req.Name, businessID, req.UserID)

	if err := s.checkOwnerAccess(ctx, businessID, req.UserID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: stylist name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: stylist name too long", ErrInvalidInput)
	}

	status := domain.StylistAvailable
	if req.Status != "" {
		parsed, err := domain.ParseStylistStatus(req.Status)
		if err != nil {
			s.logger.Warn("CreateStylist: invalid status=%s for business=%d", req.Status, businessID)
			return nil, fmt.Errorf("%w: invalid stylist status", ErrInvalidInput)
		}
		status = parsed
	}

	created, err := s.stylistRepo.Create(ctx, &domain.Stylist{
		BusinessID: businessID,
		Name:       req.Name,
		Public:     req.Public,
		Status:     status,
	})
	if err != nil {
		s.logger.Error("CreateStylist: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: CreateStylist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStylist: successfully created stylist id=%d for business=%d", created.ID, businessID)
	return models.FromDomainStylist(created), nil
}

// ListStylists получает мастеров бизнеса
// Публичный вызов возвращает только публичных мастеров; владелец видит всех
func (s *Service) ListStylists(ctx context.Context, businessID int64, userID *int64) (*models.StylistListResponse, error) {
	s.logger.Info("ListStylists: fetching stylists for business=%d", businessID)

	publicOnly := true
	if userID != nil {
		if err := s.checkOwnerAccess(ctx, businessID, *userID); err != nil {
			return nil, err
		}
		publicOnly = false
	}

	stylists, err := s.stylistRepo.ListByBusiness(ctx, businessID, publicOnly)
	if err != nil {
		s.logger.Error("ListStylists: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListStylists - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStylists: successfully fetched %d stylists for business=%d", len(stylists), businessID)
	return models.FromDomainStylistList(stylists), nil
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
