package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/internal/infra/slotlock"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	catalogRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/catalog"
	customerRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/customer"
	businessClient "github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/integrations/mailservice"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

const mailTimeout = 10 * time.Second

// UseCase use case для создания записи (публичное и внутреннее бронирование)
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	agendaRepo      AgendaRepository
	serviceRepo     ServiceRepository
	stylistRepo     StylistRepository
	businessClient  BusinessServiceClient
	mailClient      MailServiceClient
	txManager       TxManager
	locker          SlotLocker
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	agendaRepo AgendaRepository,
	serviceRepo ServiceRepository,
	stylistRepo StylistRepository,
	businessClient BusinessServiceClient,
	mailClient MailServiceClient,
	txManager TxManager,
	locker SlotLocker,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		agendaRepo:      agendaRepo,
		serviceRepo:     serviceRepo,
		stylistRepo:     stylistRepo,
		businessClient:  businessClient,
		mailClient:      mailClient,
		txManager:       txManager,
		locker:          locker,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Против гонок двойного бронирования используются три рубежа:
// распределённая блокировка слота, serializable-транзакция и повторная
// проверка пересечений по заблокированным строкам (FOR UPDATE) внутри неё
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: source=%s, business=%d, service=%d, stylist=%v, date=%s, time=%s",
		req.Source, req.BusinessID, req.ServiceID, req.StylistID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем бизнес; для внутреннего источника — что актор его владелец
	business, err := uc.businessClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if req.Source == SourceInternal && business.OwnerID != *req.ActorID {
		uc.logger.Warn("CreateBooking: user id=%d is not the owner of business id=%d",
			*req.ActorID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем услугу и проверяем принадлежность бизнесу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != req.BusinessID || !service.Active {
		return nil, ErrServiceNotFound
	}

	// 4. Проверяем мастера, если он выбран
	if req.StylistID != nil {
		stylist, err := uc.stylistRepo.GetByID(ctx, *req.StylistID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStylistNotFound) {
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("CreateBooking: failed to get stylist id=%d: %v", *req.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
		if stylist.BusinessID != req.BusinessID {
			return nil, ErrStylistNotFound
		}
		if stylist.Status == domain.StylistOff {
			uc.logger.Warn("CreateBooking: stylist id=%d is off", *req.StylistID)
			return nil, ErrSlotNotAvailable
		}
	}

	// 5. Проверяем рабочий день и попадание слота в сетку
	settings, err := uc.agendaRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if !errors.Is(err, agendaRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: failed to get agenda settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get agenda settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultAgendaSettings(req.BusinessID)
	}
	if !settings.IsWorkingDay(req.Date) {
		uc.logger.Warn("CreateBooking: business=%d is closed on %s",
			req.BusinessID, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}
	grid := domain.GenerateSlots(settings)
	if domain.SlotIndex(grid, req.StartTime) < 0 {
		uc.logger.Warn("CreateBooking: start time %s is off the slot grid", req.StartTime)
		return nil, ErrSlotNotAvailable
	}

	// 6. Быстрая предварительная проверка доступности вне транзакции,
	// чтобы не тратить блокировки на заведомо занятый слот
	if req.StylistID != nil {
		if ok, err := uc.slotFree(ctx, req, grid, settings, service); err != nil {
			return nil, err
		} else if !ok {
			uc.logger.Warn("CreateBooking: slot %s on %s is already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
	}

	// 7. Бронируем под блокировкой слота в serializable-транзакции
	var (
		appt     *domain.Appointment
		customer *domain.Customer
	)
	lockStylist := int64(0)
	if req.StylistID != nil {
		lockStylist = *req.StylistID
	}
	err = uc.locker.WithLock(ctx, req.BusinessID, lockStylist, req.Date, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
			// Повторная проверка по строкам, заблокированным FOR UPDATE
			if req.StylistID != nil {
				ok, err := uc.slotFree(ctx, req, grid, settings, service)
				if err != nil {
					return err
				}
				if !ok {
					return ErrSlotNotAvailable
				}
			}

			customer, err = uc.resolveCustomer(ctx, req)
			if err != nil {
				return err
			}

			appt, err = uc.appointmentRepo.Create(ctx, &domain.Appointment{
				BusinessID:      req.BusinessID,
				CustomerID:      customer.ID,
				ServiceID:       req.ServiceID,
				StylistID:       req.StylistID,
				Reference:       uuid.NewString(),
				Date:            req.Date,
				StartTime:       req.StartTime,
				DurationMinutes: service.DurationMinutes,
				Status:          domain.StatusScheduled,
				ServiceName:     service.Name,
				Price:           service.Price,
				Notes:           req.Notes,
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, slotlock.ErrLockNotAcquired) {
			uc.logger.Warn("CreateBooking: slot lock busy for business=%d, stylist=%d, date=%s",
				req.BusinessID, lockStylist, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrCustomerNotFound) ||
			errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: appointment id=%d reference=%s created for business=%d",
		appt.ID, appt.Reference, appt.BusinessID)

	// 8. Письмо подтверждения отправляется после коммита и не влияет
	// на результат бронирования
	uc.sendConfirmation(business, appt, customer)

	return &Response{Appointment: appt, Customer: customer}, nil
}

// slotFree проверяет, свободен ли запрошенный слот у мастера
// Внутри транзакции листинг одной даты блокирует строки FOR UPDATE
func (uc *UseCase) slotFree(
	ctx context.Context,
	req *Request,
	grid []types.TimeString,
	settings *domain.AgendaSettings,
	service *domain.Service,
) (bool, error) {
	filter := domain.AppointmentsFilter{
		BusinessID:       req.BusinessID,
		StylistID:        req.StylistID,
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		IncludeCancelled: false,
	}
	existing, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list appointments: %v", err)
		return false, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}
	ok := domain.IsSlotAvailable(
		grid,
		req.StartTime,
		service.DurationMinutes,
		settings.Granularity(),
		existing,
		req.StylistID,
		0,
	)
	return ok, nil
}

// resolveCustomer находит или создаёт клиента в рамках текущей транзакции
// Для публичного бронирования клиент ищется по паре (бизнес, email)
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (*domain.Customer, error) {
	if req.Source == SourceInternal {
		c, err := uc.customerRepo.GetByID(ctx, *req.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				return nil, ErrCustomerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", *req.CustomerID, err)
			return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
		if c.BusinessID != req.BusinessID {
			return nil, ErrCustomerNotFound
		}
		return c, nil
	}

	c, err := uc.customerRepo.GetByBusinessAndEmail(ctx, req.BusinessID, req.CustomerEmail)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		uc.logger.Error("CreateBooking: failed to look up customer by email: %v", err)
		return nil, fmt.Errorf("%w: failed to look up customer: %v", ErrInternal, err)
	}

	email := req.CustomerEmail
	created, err := uc.customerRepo.Create(ctx, &domain.Customer{
		BusinessID: req.BusinessID,
		Name:       req.CustomerName,
		Email:      &email,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create customer: %v", err)
		return nil, fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
	}
	uc.logger.Info("CreateBooking: customer id=%d created for business=%d", created.ID, created.BusinessID)
	return created, nil
}

// sendConfirmation отправляет письмо подтверждения в фоне
// Ошибка отправки логируется и не откатывает бронирование
func (uc *UseCase) sendConfirmation(business *businessClient.Business, appt *domain.Appointment, customer *domain.Customer) {
	if customer.Email == nil || *customer.Email == "" {
		return
	}
	payload := &mailservice.BookingConfirmation{
		Recipient:    *customer.Email,
		BusinessName: business.Name,
		ServiceName:  appt.ServiceName,
		Date:         appt.Date.Format(domain.DateFormat),
		StartTime:    string(appt.StartTime),
		Price:        appt.Price,
		Notes:        appt.Notes,
		Reference:    appt.Reference,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		if err := uc.mailClient.SendBookingConfirmation(ctx, payload); err != nil {
			uc.logger.Error("CreateBooking: failed to send confirmation for reference=%s: %v",
				appt.Reference, err)
		}
	}()
}
