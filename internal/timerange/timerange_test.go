package timerange_test

import (
	"testing"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.January, 10, hour, min, 0, 0, time.UTC)
}

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"one hour", at(9, 0), at(10, 0), 60},
		{"floor seconds", at(9, 0), at(9, 0).Add(90 * time.Second), 1},
		{"zero", at(9, 0), at(9, 0), 0},
		{"negative whole", at(10, 0), at(9, 0), -60},
		{"negative floors down", at(9, 0).Add(30 * time.Second), at(9, 0), -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, timerange.DurationMinutes(c.start, c.end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	start := at(8, 0)
	end := at(12, 0)

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"before", at(5, 0), at(7, 0), false},
		{"touching start", at(6, 0), at(8, 0), false},
		{"crossing start", at(7, 0), at(9, 0), true},
		{"same start", at(8, 0), at(10, 0), true},
		{"inside", at(9, 0), at(11, 0), true},
		{"same end", at(10, 0), at(12, 0), true},
		{"crossing end", at(11, 0), at(13, 0), true},
		{"touching end", at(12, 0), at(14, 0), false},
		{"after", at(13, 0), at(15, 0), false},
		{"equal", at(8, 0), at(12, 0), true},
		{"superset", at(7, 0), at(13, 0), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, timerange.Overlaps(start, end, c.start, c.end))
			assert.Equal(t, c.expected, timerange.Overlaps(c.start, c.end, start, end), "overlap must be symmetric")
		})
	}
}

func TestValidate(t *testing.T) {
	now := at(8, 0)

	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"valid hour", at(9, 0), at(10, 0), nil},
		{"end equals start", at(9, 0), at(9, 0), timerange.ErrInvalidRange},
		{"end before start", at(10, 0), at(9, 0), timerange.ErrInvalidRange},
		{"ten minutes", at(9, 0), at(9, 10), timerange.ErrTooShort},
		{"exactly minimum", at(9, 0), at(9, 15), nil},
		{"exactly maximum", at(9, 0), at(17, 0), nil},
		{"five hundred minutes", at(9, 0), at(9, 0).Add(500 * time.Minute), timerange.ErrTooLong},
		{"start equals now", at(8, 0), at(9, 0), timerange.ErrNotInFuture},
		{"start in past", at(7, 0), at(9, 0), timerange.ErrNotInFuture},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := timerange.Validate(c.start, c.end, timerange.DefaultLimits, now)
			if c.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.wantErr)
		})
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	day := time.Date(2024, time.January, 10, 15, 30, 0, 0, loc)

	from := timerange.StartOfDay(day)
	to := timerange.EndOfDay(day)

	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, loc), from)
	assert.Equal(t, 999*time.Millisecond, time.Duration(to.Nanosecond()))
	assert.Equal(t, 23, to.Hour())

	assert.True(t, timerange.WithinDay(from, day))
	assert.True(t, timerange.WithinDay(to, day))
	assert.False(t, timerange.WithinDay(from.Add(-time.Millisecond), day))
	assert.False(t, timerange.WithinDay(from.AddDate(0, 0, 1), day))
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, at(10, 30), timerange.AddMinutes(at(9, 0), 90))
}
