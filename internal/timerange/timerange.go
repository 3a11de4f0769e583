// Package timerange содержит чистые функции над полуоткрытыми интервалами [start, end).
package timerange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("end time must be after start time")
	ErrTooShort     = errors.New("reservation is too short")
	ErrTooLong      = errors.New("reservation is too long")
	ErrNotInFuture  = errors.New("start time must be in the future")
)

// Limits - допустимая длительность брони в минутах
type Limits struct {
	MinMinutes int
	MaxMinutes int
}

// DefaultLimits: от 15 минут до 8 часов
var DefaultLimits = Limits{MinMinutes: 15, MaxMinutes: 480}

// DurationMinutes возвращает длительность в целых минутах (с округлением вниз).
// Отрицательная длительность не считается ошибкой.
func DurationMinutes(start, end time.Time) int {
	d := end.Sub(start)
	minutes := d / time.Minute
	// Деление в Go округляет к нулю, нам нужен floor
	if d%time.Minute < 0 {
		minutes--
	}
	return int(minutes)
}

// Overlaps возвращает true если [start1, end1) и [start2, end2) пересекаются.
// Интервалы, касающиеся границей, не пересекаются.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}

// Validate проверяет интервал брони относительно now.
// Порядок проверок: корректность интервала, будущее, минимум, максимум.
func Validate(start, end time.Time, limits Limits, now time.Time) error {
	if !end.After(start) {
		return ErrInvalidRange
	}
	if !start.After(now) {
		return ErrNotInFuture
	}

	duration := DurationMinutes(start, end)
	if duration < limits.MinMinutes {
		return ErrTooShort
	}
	if duration > limits.MaxMinutes {
		return ErrTooLong
	}
	return nil
}

// StartOfDay возвращает 00:00:00.000 календарного дня t в его часовом поясе
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay возвращает 23:59:59.999 календарного дня t в его часовом поясе
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// AddMinutes сдвигает t на заданное число минут
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// WithinDay проверяет что t попадает в календарный день day (границы включительно)
func WithinDay(t, day time.Time) bool {
	from, to := StartOfDay(day), EndOfDay(day)
	return !t.Before(from) && !t.After(to)
}
