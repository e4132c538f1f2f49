package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/SH-BookingService/internal/domain"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	catalogRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/catalog"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, f.err
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

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	agenda       *fakeAgendaRepo
	services     *fakeServiceRepo
	stylists     *fakeStylistRepo
	business     *fakeBusinessClient
	uc           *UseCase
}

// Понедельник 14.09.2026, салон 09:00-12:00 с шагом 30 минут, услуга 60 минут
func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		agenda: &fakeAgendaRepo{
			settings: &domain.AgendaSettings{
				BusinessID:      1,
				StartHour:       "09:00",
				EndHour:         "12:00",
				ServiceDuration: 30,
				WorkingDays:     []int64{1, 2, 3, 4, 5},
			},
		},
		services: &fakeServiceRepo{
			service: &domain.Service{ID: 10, BusinessID: 1, Name: "Стрижка", DurationMinutes: 60, Active: true},
		},
		stylists: &fakeStylistRepo{
			stylist: &domain.Stylist{ID: 5, BusinessID: 1, Name: "Анна", Status: domain.StylistAvailable},
		},
		business: &fakeBusinessClient{
			business: &businessservice.Business{ID: 1, OwnerID: 100, Name: "Salon"},
		},
	}

	f.uc = NewUseCase(f.appointments, f.agenda, f.services, f.stylists, f.business, nopLogger{})
	// Запрашиваемая дата всегда в будущем относительно фиксированного "сейчас"
	f.uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}

	return f
}

func stylistPtr(id int64) *int64 { return &id }

func monday() time.Time {
	return time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
}

func defaultRequest() *Request {
	return &Request{
		BusinessID: 1,
		ServiceID:  10,
		StylistID:  stylistPtr(5),
		Date:       monday(),
	}
}

func availabilityByTime(slots []Slot) map[types.TimeString]bool {
	result := make(map[types.TimeString]bool, len(slots))
	for _, s := range slots {
		result[s.StartTime] = s.Available
	}
	return result
}

func TestExecute_MarksOccupiedSlots(t *testing.T) {
	f := newFixture()
	// Запись у этого же мастера на 10:00 длительностью 30 минут
	f.appointments.appointments = []*domain.Appointment{
		{ID: 1, BusinessID: 1, StylistID: stylistPtr(5), StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	resp, err := f.uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 7)

	got := availabilityByTime(resp.Slots)
	// Услуга 60 минут: 09:30 и 10:00 пересекаются с занятым интервалом,
	// 12:00 не помещается до конца рабочего дня
	assert.True(t, got["09:00"])
	assert.False(t, got["09:30"])
	assert.False(t, got["10:00"])
	assert.True(t, got["10:30"])
	assert.True(t, got["11:00"])
	assert.True(t, got["11:30"])
	assert.False(t, got["12:00"])
}

func TestExecute_BusinessNotFound(t *testing.T) {
	f := newFixture()
	f.business.business = nil
	f.business.err = businessservice.ErrBusinessNotFound

	_, err := f.uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_ServiceFromAnotherBusiness(t *testing.T) {
	f := newFixture()
	f.services.service.BusinessID = 999

	_, err := f.uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	f := newFixture()
	f.services.service.Active = false

	_, err := f.uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StylistNotFound(t *testing.T) {
	f := newFixture()
	f.stylists.stylist = nil
	f.stylists.err = catalogRepo.ErrStylistNotFound

	_, err := f.uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	f := newFixture()
	req := defaultRequest()
	req.Date = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC) // воскресенье

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoStylistSelected(t *testing.T) {
	f := newFixture()
	req := defaultRequest()
	req.StylistID = nil

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 7)

	// Без выбранного мастера сетка показывается, но бронировать пока нельзя
	for _, slot := range resp.Slots {
		assert.False(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_StylistOff(t *testing.T) {
	f := newFixture()
	f.stylists.stylist.Status = domain.StylistOff

	resp, err := f.uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 7)

	for _, slot := range resp.Slots {
		assert.False(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_DefaultSettingsFallback(t *testing.T) {
	f := newFixture()
	f.agenda.settings = nil
	f.agenda.err = agendaRepo.ErrSettingsNotFound

	resp, err := f.uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	// Дефолтная сетка 08:00-18:00 с шагом 30 минут, включая верхнюю границу
	require.Len(t, resp.Slots, 21)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), resp.Slots[20].StartTime)
}

func TestExecute_PastSlotsToday(t *testing.T) {
	f := newFixture()
	// "Сейчас" 10:05 в запрашиваемый день
	f.uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 14, 10, 5, 0, 0, time.UTC)}

	resp, err := f.uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	got := availabilityByTime(resp.Slots)
	assert.False(t, got["09:30"])
	assert.False(t, got["10:00"])
	assert.True(t, got["10:30"])
	assert.True(t, got["11:00"])
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		mod  func(*Request)
	}{
		{name: "нулевой бизнес", mod: func(r *Request) { r.BusinessID = 0 }},
		{name: "отрицательная услуга", mod: func(r *Request) { r.ServiceID = -1 }},
		{name: "нулевой мастер", mod: func(r *Request) { r.StylistID = stylistPtr(0) }},
		{name: "нет даты", mod: func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := defaultRequest()
			tt.mod(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
