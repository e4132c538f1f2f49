package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "формат HH:MM", input: "09:30", want: "09:30"},
		{name: "полночь", input: "00:00", want: "00:00"},
		{name: "секунды отбрасываются", input: "14:15:33", want: "14:15"},
		{name: "пустая строка", input: "", wantErr: true},
		{name: "без ведущего нуля", input: "9:30", wantErr: true},
		{name: "часы вне диапазона", input: "25:00", wantErr: true},
		{name: "мусор", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 1, 17, 45, 59, 0, time.UTC)
	assert.Equal(t, TimeString("17:45"), NewTimeString(moment))
}

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("08:00").Validate())
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("8am").Validate(), ErrInvalidTimeString)
}

func TestTimeStringMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
	assert.Equal(t, 0, TimeString("не время").Minutes())

	// Верхняя граница суток строго позже любого времени дня
	assert.Equal(t, 1440, EndOfDay.Minutes())
	assert.True(t, TimeString("23:59").IsBefore(EndOfDay))
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))
	assert.False(t, TimeString("08:00").IsAfter("08:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// 24:00 допустимо как верхняя граница рабочего дня
	got, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:15:00"))
	assert.Equal(t, TimeString("10:15"), ts)

	require.NoError(t, ts.Scan([]byte("11:45")))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 13, 20, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("13:20"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(123))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("junk").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
