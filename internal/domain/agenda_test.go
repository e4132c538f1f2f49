package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAgendaSettings(t *testing.T) {
	settings := DefaultAgendaSettings(42)

	assert.Equal(t, int64(42), settings.BusinessID)
	assert.Equal(t, DefaultStartHour, settings.StartHour)
	assert.Equal(t, DefaultEndHour, settings.EndHour)
	assert.Equal(t, DefaultServiceDuration, settings.ServiceDuration)
	assert.Equal(t, DefaultWorkingDays, settings.WorkingDays)

	// Дефолтный срез копируется, мутации не затрагивают глобальное значение
	settings.WorkingDays[0] = 99
	assert.Equal(t, int64(0), DefaultWorkingDays[0])
}

func TestGranularity(t *testing.T) {
	for _, g := range AllowedGranularities {
		settings := &AgendaSettings{ServiceDuration: g}
		assert.Equal(t, g, settings.Granularity())
	}

	// Значения вне списка приводятся к дефолту
	for _, invalid := range []int{0, -5, 7, 17, 120} {
		settings := &AgendaSettings{ServiceDuration: invalid}
		assert.Equal(t, DefaultServiceDuration, settings.Granularity(), "duration=%d", invalid)
	}
}

func TestIsWorkingDay(t *testing.T) {
	// Только будни
	settings := &AgendaSettings{WorkingDays: []int64{1, 2, 3, 4, 5}}

	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	assert.True(t, settings.IsWorkingDay(monday))
	assert.False(t, settings.IsWorkingDay(sunday))

	empty := &AgendaSettings{WorkingDays: nil}
	assert.False(t, empty.IsWorkingDay(monday))
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"scheduled", "completed", "cancelled"} {
		status, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, AppointmentStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "SCHEDULED", "done"} {
		_, err := ParseStatus(invalid)
		assert.ErrorIs(t, err, ErrUnknownStatus, "status=%q", invalid)
	}
}

func TestAppointmentTransitions(t *testing.T) {
	scheduled := &Appointment{Status: StatusScheduled}
	completed := &Appointment{Status: StatusCompleted}
	cancelled := &Appointment{Status: StatusCancelled}

	assert.True(t, scheduled.CanBeCancelled())
	assert.True(t, scheduled.CanBeRescheduled())
	assert.True(t, scheduled.IsActive())

	assert.False(t, completed.CanBeCancelled())
	assert.False(t, completed.CanBeRescheduled())
	assert.True(t, completed.IsActive(), "завершённая запись остаётся в сетке")

	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, cancelled.CanBeRescheduled())
	assert.False(t, cancelled.IsActive())
	assert.True(t, cancelled.IsCancelled())
}

func TestAppointmentEndTime(t *testing.T) {
	appt := &Appointment{StartTime: "10:00", DurationMinutes: 90}

	end, err := appt.EndTime()
	assert.NoError(t, err)
	assert.Equal(t, "11:30", end.String())
}
