package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/SH-BookingService/pkg/types"
)

func settingsWith(start, end types.TimeString, duration int) *AgendaSettings {
	return &AgendaSettings{
		BusinessID:      1,
		StartHour:       start,
		EndHour:         end,
		ServiceDuration: duration,
		WorkingDays:     []int64{0, 1, 2, 3, 4, 5, 6},
	}
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		settings *AgendaSettings
		want     []types.TimeString
	}{
		{
			name:     "часовая сетка включает граничный слот",
			settings: settingsWith("08:00", "11:00", 60),
			want:     []types.TimeString{"08:00", "09:00", "10:00", "11:00"},
		},
		{
			name:     "шаг 30 минут",
			settings: settingsWith("09:00", "10:30", 30),
			want:     []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "недопустимый шаг приводится к дефолтным 30 минутам",
			settings: settingsWith("09:00", "10:00", 17),
			want:     []types.TimeString{"09:00", "09:30", "10:00"},
		},
		{
			name:     "конец рабочего дня у полуночи не добавляет 24:00",
			settings: settingsWith("22:00", "23:30", 60),
			want:     []types.TimeString{"22:00", "23:00"},
		},
		{
			name:     "последний слот упирается ровно в полночь",
			settings: settingsWith("23:00", "23:45", 30),
			want:     []types.TimeString{"23:00", "23:30"},
		},
		{
			name:     "начало равно концу - пустая сетка",
			settings: settingsWith("10:00", "10:00", 30),
			want:     nil,
		},
		{
			name:     "начало после конца - пустая сетка",
			settings: settingsWith("18:00", "08:00", 30),
			want:     nil,
		},
		{
			name:     "некорректное время - пустая сетка",
			settings: settingsWith("garbage", "18:00", 30),
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.settings)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	settings := settingsWith("08:00", "20:00", 15)

	first := GenerateSlots(settings)
	second := GenerateSlots(settings)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSlotIndex(t *testing.T) {
	grid := GenerateSlots(settingsWith("08:00", "11:00", 60))

	assert.Equal(t, 0, SlotIndex(grid, "08:00"))
	assert.Equal(t, 3, SlotIndex(grid, "11:00"))
	assert.Equal(t, -1, SlotIndex(grid, "08:30"), "время вне сетки")
	assert.Equal(t, -1, SlotIndex(nil, "08:00"), "пустая сетка")
}

func TestSlotsNeeded(t *testing.T) {
	tests := []struct {
		duration    int
		granularity int
		want        int
	}{
		{30, 30, 1},
		{45, 30, 2}, // округление вверх
		{60, 30, 2},
		{90, 60, 2},
		{10, 30, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotsNeeded(tt.duration, tt.granularity),
			"duration=%d granularity=%d", tt.duration, tt.granularity)
	}
}
