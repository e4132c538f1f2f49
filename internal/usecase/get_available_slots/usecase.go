package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonhub/SH-BookingService/internal/domain"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	catalogRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/catalog"
	businessClient "github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
)

// UseCase use case для получения сетки доступных слотов
type UseCase struct {
	appointmentRepo AppointmentRepository
	agendaRepo      AgendaRepository
	serviceRepo     ServiceRepository
	stylistRepo     StylistRepository
	businessClient  BusinessServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	agendaRepo AgendaRepository,
	serviceRepo ServiceRepository,
	stylistRepo StylistRepository,
	businessClient BusinessServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		agendaRepo:      agendaRepo,
		serviceRepo:     serviceRepo,
		stylistRepo:     stylistRepo,
		businessClient:  businessClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Отсутствие настроек расписания или нерабочий день — валидное пустое
// состояние, а не ошибка: возвращается пустая сетка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, service=%d, stylist=%v, date=%s",
		req.BusinessID, req.ServiceID, req.StylistID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование бизнеса
	if _, err := uc.businessClient.GetBusiness(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем принадлежность бизнесу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != req.BusinessID || !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d does not belong to business id=%d or inactive",
			req.ServiceID, req.BusinessID)
		return nil, ErrServiceNotFound
	}

	// 4. Проверяем мастера, если он выбран
	var stylistOff bool
	if req.StylistID != nil {
		stylist, err := uc.stylistRepo.GetByID(ctx, *req.StylistID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStylistNotFound) {
				uc.logger.Warn("GetAvailableSlots: stylist id=%d not found", *req.StylistID)
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get stylist id=%d: %v", *req.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
		if stylist.BusinessID != req.BusinessID {
			uc.logger.Warn("GetAvailableSlots: stylist id=%d does not belong to business id=%d",
				*req.StylistID, req.BusinessID)
			return nil, ErrStylistNotFound
		}
		stylistOff = stylist.Status == domain.StylistOff
	}

	// 5. Получаем настройки расписания; отсутствие — дефолтные значения
	settings, err := uc.agendaRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if !errors.Is(err, agendaRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get agenda settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get agenda settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultAgendaSettings(req.BusinessID)
		uc.logger.Info("GetAvailableSlots: using default agenda settings for business=%d", req.BusinessID)
	}

	// 6. Нерабочий день — пустая сетка
	if !settings.IsWorkingDay(req.Date) {
		uc.logger.Info("GetAvailableSlots: business=%d is closed on %s",
			req.BusinessID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 7. Генерируем сетку слотов
	grid := domain.GenerateSlots(settings)
	if len(grid) == 0 {
		uc.logger.Info("GetAvailableSlots: business=%d has no configured hours", req.BusinessID)
		return uc.emptyResponse(req), nil
	}

	// 8. Получаем активные записи на эту дату
	filter := domain.AppointmentsFilter{
		BusinessID:       req.BusinessID,
		StylistID:        req.StylistID,
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		IncludeCancelled: false, // Отменённые записи не занимают слоты
	}

	existing, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Вычисляем доступность каждого слота
	// Без выбранного мастера и для мастера со статусом off все слоты недоступны:
	// отсутствие информации означает "пока нельзя забронировать"
	now := uc.timeProvider.Now()
	today := req.Date.Format(domain.DateFormat) == now.Format(domain.DateFormat)
	nowMinutes := now.Hour()*60 + now.Minute()

	slots := make([]Slot, len(grid))
	for i, slotStart := range grid {
		available := false
		if req.StylistID != nil && !stylistOff && !(today && slotStart.Minutes() <= nowMinutes) {
			available = domain.IsSlotAvailable(
				grid,
				slotStart,
				service.DurationMinutes,
				settings.Granularity(),
				existing,
				req.StylistID,
				0,
			)
		}
		slots[i] = Slot{
			StartTime: slotStart,
			Available: available,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, service=%d, date=%s",
		len(slots), req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		StylistID:  req.StylistID,
		Slots:      slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:       req.Date,
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		StylistID:  req.StylistID,
		Slots:      []Slot{},
	}
}
