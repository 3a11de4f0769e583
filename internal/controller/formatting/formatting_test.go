package formatting

import (
	"fmt"
	"testing"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		15:  "15 мин",
		60:  "1 ч",
		90:  "1 ч 30 мин",
		480: "8 ч",
	}
	for minutes, want := range cases {
		assert.Equal(t, want, FormatDuration(minutes))
	}
}

func TestParseDateTime(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	got, err := ParseDateTime("  10.01.2024   09:30 ", msk)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 10, 6, 30, 0, 0, time.UTC), got.UTC())

	_, err = ParseDateTime("2024-01-10 09:30", msk)
	assert.Error(t, err)
}

func TestFormatTimeRange(t *testing.T) {
	start := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "10.01.2024 09:00-10:30", FormatTimeRange(start, start.Add(90*time.Minute)))
	assert.Equal(t, "10.01.2024 09:00 - 11.01.2024 01:00", FormatTimeRange(start, start.Add(16*time.Hour)))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "бронь", PluralizeReservations(1))
	assert.Equal(t, "брони", PluralizeReservations(3))
	assert.Equal(t, "броней", PluralizeReservations(11))
	assert.Equal(t, "броней", PluralizeReservations(25))
	assert.Equal(t, "зала", PluralizeRooms(22))
	assert.Equal(t, "человека", PluralizePeople(4))
}

func TestFormatReservation(t *testing.T) {
	res := &model.Reservation{
		StartTime: time.Date(2024, time.January, 10, 6, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, time.January, 10, 7, 30, 0, 0, time.UTC),
		Purpose:   "Планёрка",
		Status:    model.ReservationStatusConfirmed,
		Room:      &model.Room{Name: "Зал Альфа"},
	}
	msk := time.FixedZone("MSK", 3*60*60)

	text := FormatReservation(res, msk)
	assert.Contains(t, text, "Зал Альфа")
	assert.Contains(t, text, "10.01.2024 09:00-10:30 (1 ч 30 мин)")
	assert.Contains(t, text, "Планёрка")
	assert.Contains(t, text, "Подтверждена")

	res.Room = nil
	assert.Contains(t, FormatReservation(res, msk), "зал удалён")

	assert.Contains(t, FormatReservationList("📅 Сегодня", nil, msk), "Броней нет")
}

func TestErrorMessage(t *testing.T) {
	limits := timerange.DefaultLimits

	assert.Contains(t, ErrorMessage(service.ErrTooShort, limits, time.UTC), "15 мин")
	assert.Contains(t, ErrorMessage(service.ErrTooLong, limits, time.UTC), "8 ч")
	assert.Contains(t, ErrorMessage(fmt.Errorf("x: %w", service.ErrStorage), limits, time.UTC), "Попробуйте позже")

	conflict := &model.Reservation{
		StartTime: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, time.January, 10, 10, 0, 0, 0, time.UTC),
	}
	msg := ErrorMessage(&service.UnavailableError{Conflicts: []*model.Reservation{conflict}}, limits, time.UTC)
	assert.Contains(t, msg, "10.01.2024 09:00-10:00")
}

func TestGetReservationStatusDisplay(t *testing.T) {
	assert.Equal(t, "❌", GetReservationStatusDisplay(model.ReservationStatusCancelled).Emoji)
	assert.Equal(t, "Неизвестно", GetReservationStatusDisplay("archived").Text)
}
