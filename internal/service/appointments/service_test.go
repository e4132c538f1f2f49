package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/SH-BookingService/internal/domain"
	appointmentRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/appointment"
	customerRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/customer"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	byID            map[int64]*domain.Appointment
	cancelledID     int64
	cancelledReason string
	updatedStatus   domain.AppointmentStatus
	deletedID       int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(f.byID))
	for _, appt := range f.byID {
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.updatedStatus = status
	f.byID[id].Status = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelledReason = reason
	f.byID[id].Status = domain.StatusCancelled
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	delete(f.byID, id)
	return nil
}

type fakeCustomerRepo struct {
	customer *domain.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, _ int64) (*domain.Customer, error) {
	if f.customer == nil {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return f.customer, nil
}

type fakeBusinessClient struct {
	business *businessservice.Business
	err      error
}

func (f *fakeBusinessClient) GetBusiness(_ context.Context, _ int64) (*businessservice.Business, error) {
	return f.business, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeAppointmentRepo, *fakeCustomerRepo) {
	appts := &fakeAppointmentRepo{
		byID: map[int64]*domain.Appointment{
			1: {
				ID:              1,
				BusinessID:      1,
				CustomerID:      7,
				ServiceID:       10,
				Reference:       "a4f1b2c0-0000-0000-0000-000000000001",
				Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
				StartTime:       "10:00",
				DurationMinutes: 60,
				Status:          domain.StatusScheduled,
				ServiceName:     "Стрижка",
			},
		},
	}
	customers := &fakeCustomerRepo{
		customer: &domain.Customer{ID: 7, BusinessID: 1, Name: "Иван"},
	}
	client := &fakeBusinessClient{
		business: &businessservice.Business{ID: 1, OwnerID: 100, Name: "Salon"},
	}
	return NewService(appts, customers, client, nopLogger{}), appts, customers
}

func TestGetByID(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.GetByID(context.Background(), 1, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Иван", resp.Customer.Name)
}

func TestGetByID_CustomerLoadFailureIsNotFatal(t *testing.T) {
	svc, _, customers := newService()
	customers.customer = nil

	resp, err := svc.GetByID(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Nil(t, resp.Customer)
}

func TestGetByID_NotOwner(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetByID(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	svc, appts, _ := newService()

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		UserID:             100,
		CancellationReason: "клиент попросил",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), appts.cancelledID)
	assert.Equal(t, "клиент попросил", appts.cancelledReason)
}

func TestCancel_CompletedAppointment(t *testing.T) {
	svc, appts, _ := newService()
	appts.byID[1].Status = domain.StatusCompleted

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, appts, _ := newService()
	appts.byID[1].Status = domain.StatusCancelled

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus(t *testing.T) {
	svc, appts, _ := newService()

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, appts.updatedStatus)
}

func TestUpdateStatus_CancellationRejected(t *testing.T) {
	svc, _, _ := newService()

	// Отмена идёт только через Cancel с указанием причины
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newService()

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "postponed",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDelete(t *testing.T) {
	svc, appts, _ := newService()

	err := svc.Delete(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), appts.deletedID)

	err = svc.Delete(context.Background(), 1, 100)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
