package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/internal/infra/slotlock"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	appointmentRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/catalog"
	businessClient "github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
)

// UseCase use case для переноса записи на другой слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	agendaRepo      AgendaRepository
	stylistRepo     StylistRepository
	businessClient  BusinessServiceClient
	txManager       TxManager
	locker          SlotLocker
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	agendaRepo AgendaRepository,
	stylistRepo StylistRepository,
	businessClient BusinessServiceClient,
	txManager TxManager,
	locker SlotLocker,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		agendaRepo:      agendaRepo,
		stylistRepo:     stylistRepo,
		businessClient:  businessClient,
		txManager:       txManager,
		locker:          locker,
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
// При проверке занятости целевого слота сама переносимая запись
// исключается из пересечений, иначе перенос внутри своего же интервала
// был бы невозможен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, actor=%d, newDate=%s, newTime=%s, newStylist=%v",
		req.AppointmentID, req.ActorID,
		req.NewDate.Format(domain.DateFormat), req.NewStartTime, req.NewStylistID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Проверяем, что актор — владелец бизнеса этой записи
	business, err := uc.businessClient.GetBusiness(ctx, appt.BusinessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			uc.logger.Warn("RescheduleAppointment: business id=%d not found", appt.BusinessID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get business id=%d: %v", appt.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if business.OwnerID != req.ActorID {
		uc.logger.Warn("RescheduleAppointment: user id=%d is not the owner of business id=%d",
			req.ActorID, appt.BusinessID)
		return nil, ErrAccessDenied
	}

	// 4. Переносить можно только запланированные записи
	if !appt.CanBeRescheduled() {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d has status %s", appt.ID, appt.Status)
		return nil, ErrNotReschedulable
	}

	// 5. Определяем целевого мастера: новый или текущий
	targetStylist := appt.StylistID
	if req.NewStylistID != nil {
		stylist, err := uc.stylistRepo.GetByID(ctx, *req.NewStylistID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStylistNotFound) {
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get stylist id=%d: %v", *req.NewStylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
		if stylist.BusinessID != appt.BusinessID {
			return nil, ErrStylistNotFound
		}
		if stylist.Status == domain.StylistOff {
			uc.logger.Warn("RescheduleAppointment: stylist id=%d is off", *req.NewStylistID)
			return nil, ErrSlotNotAvailable
		}
		targetStylist = req.NewStylistID
	}

	// 6. Проверяем рабочий день и попадание нового слота в сетку
	settings, err := uc.agendaRepo.GetByBusinessID(ctx, appt.BusinessID)
	if err != nil {
		if !errors.Is(err, agendaRepo.ErrSettingsNotFound) {
			uc.logger.Error("RescheduleAppointment: failed to get agenda settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get agenda settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultAgendaSettings(appt.BusinessID)
	}
	if !settings.IsWorkingDay(req.NewDate) {
		uc.logger.Warn("RescheduleAppointment: business=%d is closed on %s",
			appt.BusinessID, req.NewDate.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}
	grid := domain.GenerateSlots(settings)
	if domain.SlotIndex(grid, req.NewStartTime) < 0 {
		uc.logger.Warn("RescheduleAppointment: start time %s is off the slot grid", req.NewStartTime)
		return nil, ErrSlotNotAvailable
	}

	// 7. Переносим под блокировкой целевого слота в serializable-транзакции
	lockStylist := int64(0)
	if targetStylist != nil {
		lockStylist = *targetStylist
	}
	err = uc.locker.WithLock(ctx, appt.BusinessID, lockStylist, req.NewDate, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
			if targetStylist != nil {
				filter := domain.AppointmentsFilter{
					BusinessID:       appt.BusinessID,
					StylistID:        targetStylist,
					StartDate:        &req.NewDate,
					EndDate:          &req.NewDate,
					IncludeCancelled: false,
				}
				existing, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
				if err != nil {
					uc.logger.Error("RescheduleAppointment: failed to list appointments: %v", err)
					return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
				}
				ok := domain.IsSlotAvailable(
					grid,
					req.NewStartTime,
					appt.DurationMinutes,
					settings.Granularity(),
					existing,
					targetStylist,
					appt.ID, // собственный интервал записи не считается конфликтом
				)
				if !ok {
					return ErrSlotNotAvailable
				}
			}
			if err := uc.appointmentRepo.Reschedule(ctx, appt.ID, req.NewDate, req.NewStartTime, targetStylist); err != nil {
				uc.logger.Error("RescheduleAppointment: failed to reschedule id=%d: %v", appt.ID, err)
				return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, slotlock.ErrLockNotAcquired) {
			uc.logger.Warn("RescheduleAppointment: slot lock busy for business=%d, stylist=%d, date=%s",
				appt.BusinessID, lockStylist, req.NewDate.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("RescheduleAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	// 8. Перечитываем запись с новыми значениями
	updated, err := uc.appointmentRepo.GetByID(ctx, appt.ID)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to re-read appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: failed to re-read appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to %s %s",
		updated.ID, updated.Date.Format(domain.DateFormat), updated.StartTime)

	return &Response{Appointment: updated}, nil
}
