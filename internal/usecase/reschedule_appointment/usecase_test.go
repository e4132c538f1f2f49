package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/SH-BookingService/internal/domain"
	appointmentRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/appointment"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	byID     map[int64]*domain.Appointment
	existing []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

func (f *fakeAppointmentRepo) Reschedule(_ context.Context, id int64, date time.Time, startTime types.TimeString, stylistID *int64) error {
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Date = date
	appt.StartTime = startTime
	appt.StylistID = stylistID
	return nil
}

type fakeAgendaRepo struct {
	settings *domain.AgendaSettings
	err      error
}

func (f *fakeAgendaRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.AgendaSettings, error) {
	return f.settings, f.err
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLocker struct{}

func (fakeLocker) WithLock(ctx context.Context, _, _ int64, _ time.Time, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func int64Ptr(v int64) *int64 { return &v }

type fixture struct {
	appointments *fakeAppointmentRepo
	agenda       *fakeAgendaRepo
	stylists     *fakeStylistRepo
	business     *fakeBusinessClient
	uc           *UseCase
}

// Запись id=1: мастер 5, понедельник 14.09.2026 в 10:00, 60 минут
func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{
			byID: map[int64]*domain.Appointment{
				1: {
					ID:              1,
					BusinessID:      1,
					CustomerID:      7,
					ServiceID:       10,
					StylistID:       int64Ptr(5),
					Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
					StartTime:       "10:00",
					DurationMinutes: 60,
					Status:          domain.StatusScheduled,
				},
			},
		},
		agenda: &fakeAgendaRepo{
			settings: &domain.AgendaSettings{
				BusinessID:      1,
				StartHour:       "09:00",
				EndHour:         "18:00",
				ServiceDuration: 30,
				WorkingDays:     []int64{1, 2, 3, 4, 5, 6},
			},
		},
		stylists: &fakeStylistRepo{
			stylist: &domain.Stylist{ID: 6, BusinessID: 1, Name: "Мария", Status: domain.StylistAvailable},
		},
		business: &fakeBusinessClient{
			business: &businessservice.Business{ID: 1, OwnerID: 100, Name: "Salon"},
		},
	}
	f.uc = NewUseCase(f.appointments, f.agenda, f.stylists, f.business, fakeTxManager{}, fakeLocker{}, nopLogger{})
	return f
}

func defaultRequest() *Request {
	return &Request{
		AppointmentID: 1,
		ActorID:       100,
		NewDate:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), // вторник
		NewStartTime:  "14:00",
	}
}

func TestExecute_MovesAppointment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	appt := resp.Appointment
	assert.Equal(t, "2026-09-15", appt.Date.Format(domain.DateFormat))
	assert.Equal(t, types.TimeString("14:00"), appt.StartTime)
	require.NotNil(t, appt.StylistID)
	assert.Equal(t, int64(5), *appt.StylistID, "мастер без смены остаётся прежним")
}

func TestExecute_MoveWithinOwnInterval(t *testing.T) {
	f := newFixture()
	// Сдвиг на полчаса вперёд в тот же день: новый интервал 10:30-11:30
	// пересекается со старым 10:00-11:00, но собственная запись не конфликт
	current := *f.appointments.byID[1]
	f.appointments.existing = []*domain.Appointment{&current}

	req := defaultRequest()
	req.NewDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	req.NewStartTime = "10:30"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), resp.Appointment.StartTime)
}

func TestExecute_TargetSlotBusy(t *testing.T) {
	f := newFixture()
	f.appointments.existing = []*domain.Appointment{
		{ID: 2, BusinessID: 1, StylistID: int64Ptr(5), StartTime: "14:00", DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledAppointment(t *testing.T) {
	f := newFixture()
	f.appointments.byID[1].Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrNotReschedulable)
}

func TestExecute_CompletedAppointment(t *testing.T) {
	f := newFixture()
	f.appointments.byID[1].Status = domain.StatusCompleted

	_, err := f.uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrNotReschedulable)
}

func TestExecute_ChangeStylist(t *testing.T) {
	f := newFixture()
	req := defaultRequest()
	req.NewStylistID = int64Ptr(6)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Appointment.StylistID)
	assert.Equal(t, int64(6), *resp.Appointment.StylistID)
}

func TestExecute_NewStylistOff(t *testing.T) {
	f := newFixture()
	f.stylists.stylist.Status = domain.StylistOff

	req := defaultRequest()
	req.NewStylistID = int64Ptr(6)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_NewStylistFromAnotherBusiness(t *testing.T) {
	f := newFixture()
	f.stylists.stylist.BusinessID = 999

	req := defaultRequest()
	req.NewStylistID = int64Ptr(6)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecute_NotOwner(t *testing.T) {
	f := newFixture()
	req := defaultRequest()
	req.ActorID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	f := newFixture()
	req := defaultRequest()
	req.AppointmentID = 777

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_OffGridTarget(t *testing.T) {
	f := newFixture()
	req := defaultRequest()
	req.NewStartTime = "14:10"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	f := newFixture()
	req := defaultRequest()
	req.NewDate = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
