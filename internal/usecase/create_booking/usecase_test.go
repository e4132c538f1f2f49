package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/internal/infra/slotlock"
	customerRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/customer"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/integrations/mailservice"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	// listResults задаёт поочерёдные ответы ListWithFilter; после исчерпания
	// возвращается existing
	listResults [][]*domain.Appointment
	created     *domain.Appointment
	nextID      int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	f.nextID++
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if len(f.listResults) > 0 {
		head := f.listResults[0]
		f.listResults = f.listResults[1:]
		return head, nil
	}
	return f.existing, nil
}

type fakeCustomerRepo struct {
	byID      map[int64]*domain.Customer
	byEmail   map[string]*domain.Customer
	created   *domain.Customer
	createErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byID:    make(map[int64]*domain.Customer),
		byEmail: make(map[string]*domain.Customer),
	}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *c
	stored.ID = int64(len(f.byID) + 100)
	f.created = &stored
	return &stored, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByBusinessAndEmail(_ context.Context, _ int64, email string) (*domain.Customer, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

type fakeAgendaRepo struct {
	settings *domain.AgendaSettings
	err      error
}

func (f *fakeAgendaRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.AgendaSettings, error) {
	return f.settings, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeStylistRepo struct {
	stylist *domain.Stylist
	err     error
}

func (f *fakeStylistRepo) GetByID(_ context.Context, _ int64) (*domain.Stylist, error) {
	return f.stylist, f.err
}

type fakeBusinessClient struct {
	business *businessservice.Business
	err      error
}

func (f *fakeBusinessClient) GetBusiness(_ context.Context, _ int64) (*businessservice.Business, error) {
	return f.business, f.err
}

type fakeMailClient struct {
	sent chan *mailservice.BookingConfirmation
}

func (f *fakeMailClient) SendBookingConfirmation(_ context.Context, payload *mailservice.BookingConfirmation) error {
	f.sent <- payload
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeLocker struct {
	busy  bool
	calls int
}

func (f *fakeLocker) WithLock(ctx context.Context, _, _ int64, _ time.Time, fn func(ctx context.Context) error) error {
	f.calls++
	if f.busy {
		return slotlock.ErrLockNotAcquired
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	customers    *fakeCustomerRepo
	agenda       *fakeAgendaRepo
	services     *fakeServiceRepo
	stylists     *fakeStylistRepo
	business     *fakeBusinessClient
	mail         *fakeMailClient
	tx           *fakeTxManager
	locker       *fakeLocker
	uc           *UseCase
}

// Салон 09:00-18:00 с шагом 30 минут, услуга 60 минут за 1500
func newFixture() *fixture {
	price := 1500.0
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		customers:    newFakeCustomerRepo(),
		agenda: &fakeAgendaRepo{
			settings: &domain.AgendaSettings{
				BusinessID:      1,
				StartHour:       "09:00",
				EndHour:         "18:00",
				ServiceDuration: 30,
				WorkingDays:     []int64{1, 2, 3, 4, 5, 6},
			},
		},
		services: &fakeServiceRepo{
			service: &domain.Service{ID: 10, BusinessID: 1, Name: "Стрижка", DurationMinutes: 60, Price: &price, Active: true},
		},
		stylists: &fakeStylistRepo{
			stylist: &domain.Stylist{ID: 5, BusinessID: 1, Name: "Анна", Status: domain.StylistAvailable},
		},
		business: &fakeBusinessClient{
			business: &businessservice.Business{ID: 1, OwnerID: 100, Name: "Salon"},
		},
		mail:   &fakeMailClient{sent: make(chan *mailservice.BookingConfirmation, 1)},
		tx:     &fakeTxManager{},
		locker: &fakeLocker{},
	}

	f.uc = NewUseCase(
		f.appointments, f.customers, f.agenda, f.services, f.stylists,
		f.business, f.mail, f.tx, f.locker, nopLogger{},
	)
	return f
}

func int64Ptr(v int64) *int64 { return &v }

func publicRequest() *Request {
	return &Request{
		Source:        SourcePublic,
		BusinessID:    1,
		ServiceID:     10,
		StylistID:     int64Ptr(5),
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), // понедельник
		StartTime:     "10:00",
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
	}
}

func internalRequest() *Request {
	req := publicRequest()
	req.Source = SourceInternal
	req.CustomerName = ""
	req.CustomerEmail = ""
	req.CustomerID = int64Ptr(7)
	req.ActorID = int64Ptr(100)
	return req
}

func waitForMail(t *testing.T, f *fixture) *mailservice.BookingConfirmation {
	t.Helper()
	select {
	case payload := <-f.mail.sent:
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was not sent")
		return nil
	}
}

func TestExecute_PublicBookingCreatesCustomer(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), publicRequest())
	require.NoError(t, err)

	// Новый клиент создан по email
	require.NotNil(t, f.customers.created)
	assert.Equal(t, "Иван Петров", resp.Customer.Name)
	require.NotNil(t, resp.Customer.Email)
	assert.Equal(t, "ivan@example.com", *resp.Customer.Email)

	// Запись со снапшотами услуги
	appt := resp.Appointment
	assert.Equal(t, resp.Customer.ID, appt.CustomerID)
	assert.Equal(t, domain.StatusScheduled, appt.Status)
	assert.Equal(t, 60, appt.DurationMinutes)
	assert.Equal(t, "Стрижка", appt.ServiceName)
	require.NotNil(t, appt.Price)
	assert.Equal(t, 1500.0, *appt.Price)

	_, err = uuid.Parse(appt.Reference)
	assert.NoError(t, err, "reference must be a valid uuid")

	// Бронирование шло через блокировку и транзакцию
	assert.Equal(t, 1, f.locker.calls)
	assert.Equal(t, 1, f.tx.calls)

	payload := waitForMail(t, f)
	assert.Equal(t, "ivan@example.com", payload.Recipient)
	assert.Equal(t, "Salon", payload.BusinessName)
	assert.Equal(t, appt.Reference, payload.Reference)
	assert.Equal(t, "2026-09-14", payload.Date)
	assert.Equal(t, "10:00", payload.StartTime)
}

func TestExecute_PublicBookingReusesCustomerByEmail(t *testing.T) {
	f := newFixture()
	email := "ivan@example.com"
	f.customers.byEmail[email] = &domain.Customer{ID: 42, BusinessID: 1, Name: "Иван", Email: &email}

	resp, err := f.uc.Execute(context.Background(), publicRequest())
	require.NoError(t, err)

	assert.Nil(t, f.customers.created, "существующий клиент не должен дублироваться")
	assert.Equal(t, int64(42), resp.Customer.ID)
	assert.Equal(t, int64(42), resp.Appointment.CustomerID)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	// Слот 10:00 уже занят этим мастером
	f.appointments.existing = []*domain.Appointment{
		{ID: 1, BusinessID: 1, StylistID: int64Ptr(5), StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_ConflictAppearsInsideTransaction(t *testing.T) {
	f := newFixture()
	// Быстрая проверка видит свободный слот, но к моменту повторной проверки
	// внутри транзакции параллельное бронирование успело занять его
	f.appointments.listResults = [][]*domain.Appointment{
		{},
		{
			{ID: 1, BusinessID: 1, StylistID: int64Ptr(5), StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusScheduled},
		},
	}

	_, err := f.uc.Execute(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.appointments.created, "запись не должна создаваться при конфликте")
	assert.Equal(t, 1, f.locker.calls)
	assert.Equal(t, 1, f.tx.calls, "конфликт обнаружен повторной проверкой в транзакции")
}

func TestExecute_StylistOff(t *testing.T) {
	f := newFixture()
	f.stylists.stylist.Status = domain.StylistOff

	_, err := f.uc.Execute(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridStartTime(t *testing.T) {
	f := newFixture()
	req := publicRequest()
	req.StartTime = "10:17"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	f := newFixture()
	req := publicRequest()
	req.Date = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_LockBusy(t *testing.T) {
	f := newFixture()
	f.locker.busy = true

	_, err := f.uc.Execute(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 0, f.tx.calls, "транзакция не должна начинаться без блокировки")
}

func TestExecute_InternalBooking(t *testing.T) {
	f := newFixture()
	f.customers.byID[7] = &domain.Customer{ID: 7, BusinessID: 1, Name: "Постоянный клиент"}

	resp, err := f.uc.Execute(context.Background(), internalRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.Appointment.CustomerID)
	assert.Nil(t, f.customers.created)
}

func TestExecute_InternalBookingNotOwner(t *testing.T) {
	f := newFixture()
	req := internalRequest()
	req.ActorID = int64Ptr(999)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_InternalBookingCustomerFromAnotherBusiness(t *testing.T) {
	f := newFixture()
	f.customers.byID[7] = &domain.Customer{ID: 7, BusinessID: 999, Name: "Чужой клиент"}

	_, err := f.uc.Execute(context.Background(), internalRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	f := newFixture()
	f.business.business = nil
	f.business.err = businessservice.ErrBusinessNotFound

	_, err := f.uc.Execute(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		mod  func(*Request)
	}{
		{name: "пустое имя клиента", mod: func(r *Request) { r.CustomerName = "   " }},
		{name: "некорректный email", mod: func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{name: "публичное без мастера", mod: func(r *Request) { r.StylistID = nil }},
		{name: "некорректное время", mod: func(r *Request) { r.StartTime = "25:99" }},
		{name: "нет даты", mod: func(r *Request) { r.Date = time.Time{} }},
		{name: "неизвестный источник", mod: func(r *Request) { r.Source = "webhook" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := publicRequest()
			tt.mod(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
