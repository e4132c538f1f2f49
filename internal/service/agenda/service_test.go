package agenda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/SH-BookingService/internal/domain"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	"github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	"github.com/salonhub/SH-BookingService/internal/service/agenda/models"
)

type fakeAgendaRepo struct {
	settings *domain.AgendaSettings
	created  *domain.AgendaSettings
	updated  *domain.AgendaSettings
}

func (f *fakeAgendaRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.AgendaSettings, error) {
	if f.settings == nil {
		return nil, agendaRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeAgendaRepo) Create(_ context.Context, settings *domain.AgendaSettings) (*domain.AgendaSettings, error) {
	stored := *settings
	stored.ID = 1
	f.created = &stored
	f.settings = &stored
	return &stored, nil
}

func (f *fakeAgendaRepo) Update(_ context.Context, _ int64, settings *domain.AgendaSettings) (*domain.AgendaSettings, error) {
	stored := *settings
	f.updated = &stored
	f.settings = &stored
	return &stored, nil
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

func newService() (*Service, *fakeAgendaRepo, *fakeBusinessClient) {
	repo := &fakeAgendaRepo{}
	client := &fakeBusinessClient{
		business: &businessservice.Business{ID: 1, OwnerID: 100, Name: "Salon"},
	}
	return NewService(repo, client, nopLogger{}), repo, client
}

func validUpdateRequest() *models.UpdateAgendaSettingsRequest {
	return &models.UpdateAgendaSettingsRequest{
		UserID:          100,
		StartHour:       "10:00",
		EndHour:         "20:00",
		ServiceDuration: 45,
		WorkingDays:     []int64{1, 2, 3, 4, 5},
	}
}

func TestGetSettings_LazyCreatesDefaults(t *testing.T) {
	svc, repo, _ := newService()

	resp, err := svc.GetSettings(context.Background(), 1, 100)
	require.NoError(t, err)

	// Первое обращение создаёт настройки с дефолтными значениями
	require.NotNil(t, repo.created)
	assert.Equal(t, string(domain.DefaultStartHour), resp.StartHour)
	assert.Equal(t, string(domain.DefaultEndHour), resp.EndHour)
	assert.Equal(t, domain.DefaultServiceDuration, resp.ServiceDuration)
	assert.Equal(t, domain.DefaultWorkingDays, resp.WorkingDays)

	// Повторное обращение дефолты не пересоздаёт
	repo.created = nil
	_, err = svc.GetSettings(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Nil(t, repo.created)
}

func TestGetSettings_NotOwner(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetSettings(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetSettings_BusinessNotFound(t *testing.T) {
	svc, _, client := newService()
	client.business = nil
	client.err = businessservice.ErrBusinessNotFound

	_, err := svc.GetSettings(context.Background(), 1, 100)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestUpdateSettings(t *testing.T) {
	svc, repo, _ := newService()

	resp, err := svc.UpdateSettings(context.Background(), 1, validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, "10:00", resp.StartHour)
	assert.Equal(t, "20:00", resp.EndHour)
	assert.Equal(t, 45, resp.ServiceDuration)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, resp.WorkingDays)

	// Настроек не было: перед обновлением создаются дефолтные
	require.NotNil(t, repo.created)
	require.NotNil(t, repo.updated)
}

func TestUpdateSettings_ClosedWindowAllowed(t *testing.T) {
	svc, _, _ := newService()

	// start >= end означает "салон закрыт" и проходит валидацию
	req := validUpdateRequest()
	req.StartHour = "18:00"
	req.EndHour = "09:00"

	resp, err := svc.UpdateSettings(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "18:00", resp.StartHour)
}

func TestUpdateSettings_Validation(t *testing.T) {
	svc, _, _ := newService()

	tests := []struct {
		name string
		mod  func(*models.UpdateAgendaSettingsRequest)
	}{
		{name: "некорректный формат времени", mod: func(r *models.UpdateAgendaSettingsRequest) { r.StartHour = "пол десятого" }},
		{name: "недопустимый шаг сетки", mod: func(r *models.UpdateAgendaSettingsRequest) { r.ServiceDuration = 17 }},
		{name: "нулевой шаг сетки", mod: func(r *models.UpdateAgendaSettingsRequest) { r.ServiceDuration = 0 }},
		{name: "пустые рабочие дни", mod: func(r *models.UpdateAgendaSettingsRequest) { r.WorkingDays = nil }},
		{name: "день вне диапазона", mod: func(r *models.UpdateAgendaSettingsRequest) { r.WorkingDays = []int64{1, 7} }},
		{name: "дубликат дня", mod: func(r *models.UpdateAgendaSettingsRequest) { r.WorkingDays = []int64{1, 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mod(req)
			_, err := svc.UpdateSettings(context.Background(), 1, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateSettings_NotOwner(t *testing.T) {
	svc, _, _ := newService()
	req := validUpdateRequest()
	req.UserID = 999

	_, err := svc.UpdateSettings(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
