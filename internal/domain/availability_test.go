package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/SH-BookingService/pkg/types"
)

func stylist(id int64) *int64 {
	return &id
}

func appointmentAt(id int64, start types.TimeString, duration int, stylistID *int64, status AppointmentStatus) *Appointment {
	return &Appointment{
		ID:              id,
		BusinessID:      1,
		CustomerID:      1,
		ServiceID:       1,
		StylistID:       stylistID,
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestIsSlotAvailable(t *testing.T) {
	// Сетка 09:00-12:00 с шагом 30 минут
	grid := GenerateSlots(settingsWith("09:00", "12:00", 30))

	tests := []struct {
		name      string
		candidate types.TimeString
		duration  int
		existing  []*Appointment
		stylistID *int64
		excludeID int64
		want      bool
	}{
		{
			name:      "свободная сетка",
			candidate: "09:00",
			duration:  30,
			stylistID: stylist(1),
			want:      true,
		},
		{
			name:      "точное совпадение с занятым слотом",
			candidate: "09:00",
			duration:  30,
			existing:  []*Appointment{appointmentAt(1, "09:00", 30, stylist(1), StatusScheduled)},
			stylistID: stylist(1),
			want:      false,
		},
		{
			name:      "длинная запись занимает несколько слотов",
			candidate: "09:30",
			duration:  30,
			existing:  []*Appointment{appointmentAt(1, "09:00", 90, stylist(1), StatusScheduled)},
			stylistID: stylist(1),
			want:      false,
		},
		{
			name:      "длинный кандидат пересекается с поздней записью",
			candidate: "09:00",
			duration:  90,
			existing:  []*Appointment{appointmentAt(1, "10:00", 30, stylist(1), StatusScheduled)},
			stylistID: stylist(1),
			want:      false,
		},
		{
			name:      "слот после занятого свободен",
			candidate: "10:30",
			duration:  30,
			existing:  []*Appointment{appointmentAt(1, "09:00", 90, stylist(1), StatusScheduled)},
			stylistID: stylist(1),
			want:      true,
		},
		{
			name:      "отменённая запись не занимает слот",
			candidate: "09:00",
			duration:  30,
			existing:  []*Appointment{appointmentAt(1, "09:00", 30, stylist(1), StatusCancelled)},
			stylistID: stylist(1),
			want:      true,
		},
		{
			name:      "завершённая запись продолжает занимать слот",
			candidate: "09:00",
			duration:  30,
			existing:  []*Appointment{appointmentAt(1, "09:00", 30, stylist(1), StatusCompleted)},
			stylistID: stylist(1),
			want:      false,
		},
		{
			name:      "запись другого мастера не конфликтует",
			candidate: "09:00",
			duration:  30,
			existing:  []*Appointment{appointmentAt(1, "09:00", 30, stylist(2), StatusScheduled)},
			stylistID: stylist(1),
			want:      true,
		},
		{
			name:      "запись без мастера не конфликтует",
			candidate: "09:00",
			duration:  30,
			existing:  []*Appointment{appointmentAt(1, "09:00", 30, nil, StatusScheduled)},
			stylistID: stylist(1),
			want:      true,
		},
		{
			name:      "перенос не конфликтует сам с собой",
			candidate: "09:30",
			duration:  60,
			existing:  []*Appointment{appointmentAt(7, "09:00", 60, stylist(1), StatusScheduled)},
			stylistID: stylist(1),
			excludeID: 7,
			want:      true,
		},
		{
			name:      "кандидат вне сетки",
			candidate: "09:10",
			duration:  30,
			stylistID: stylist(1),
			want:      false,
		},
		{
			name:      "хвост услуги выходит за пределы сетки",
			candidate: "11:30",
			duration:  120,
			stylistID: stylist(1),
			want:      false,
		},
		{
			name:      "без мастера бронировать нельзя",
			candidate: "09:00",
			duration:  30,
			stylistID: nil,
			want:      false,
		},
		{
			name:      "нулевая длительность",
			candidate: "09:00",
			duration:  0,
			stylistID: stylist(1),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSlotAvailable(grid, tt.candidate, tt.duration, 30, tt.existing, tt.stylistID, tt.excludeID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotAvailable_EmptyGrid(t *testing.T) {
	assert.False(t, IsSlotAvailable(nil, "09:00", 30, 30, nil, stylist(1), 0))
}

// Запись, сделанная до смены настроек расписания, не попадает в новую сетку,
// но всё равно блокирует пересекающиеся с ней слоты
func TestIsSlotAvailable_OffGridAppointmentStillBlocks(t *testing.T) {
	grid := GenerateSlots(settingsWith("09:00", "12:00", 30))

	offGrid := appointmentAt(1, "09:10", 60, stylist(1), StatusScheduled)

	assert.False(t, IsSlotAvailable(grid, "09:30", 30, 30, []*Appointment{offGrid}, stylist(1), 0))
	assert.False(t, IsSlotAvailable(grid, "10:00", 30, 30, []*Appointment{offGrid}, stylist(1), 0))
	assert.True(t, IsSlotAvailable(grid, "10:30", 30, 30, []*Appointment{offGrid}, stylist(1), 0))
}
