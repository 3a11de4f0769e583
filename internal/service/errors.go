package service

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
)

// Ошибки проверки интервала (до обращения к хранилищу)
var (
	ErrInvalidRange = timerange.ErrInvalidRange
	ErrTooShort     = timerange.ErrTooShort
	ErrTooLong      = timerange.ErrTooLong
	ErrNotInFuture  = timerange.ErrNotInFuture
)

var (
	ErrRoomUnavailable   = errors.New("room is already booked for this period")
	ErrNotFound          = errors.New("not found")
	ErrStorage           = errors.New("storage error")
	ErrRoomDisabled      = errors.New("room is disabled by administrator")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrInvalidRoom       = errors.New("invalid room data")
)

// ErrorKind - стабильный код ошибки для слоя отображения
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindInvalidRange      ErrorKind = "invalid_range"
	KindTooShort          ErrorKind = "too_short"
	KindTooLong           ErrorKind = "too_long"
	KindNotInFuture       ErrorKind = "not_in_future"
	KindRoomUnavailable   ErrorKind = "room_unavailable"
	KindNotFound          ErrorKind = "not_found"
	KindStorage           ErrorKind = "storage_error"
	KindRoomDisabled      ErrorKind = "room_disabled"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindInvalidRoom       ErrorKind = "invalid_room"
	KindUnknown           ErrorKind = "unknown"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidRange, KindInvalidRange},
	{ErrTooShort, KindTooShort},
	{ErrTooLong, KindTooLong},
	{ErrNotInFuture, KindNotInFuture},
	{ErrRoomUnavailable, KindRoomUnavailable},
	{ErrNotFound, KindNotFound},
	{ErrRoomDisabled, KindRoomDisabled},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrInvalidRoom, KindInvalidRoom},
	{ErrStorage, KindStorage},
}

// KindOf определяет вид ошибки
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// UnavailableError несёт список конфликтующих броней
type UnavailableError struct {
	Conflicts []*model.Reservation
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %d conflicting reservation(s)", ErrRoomUnavailable, len(e.Conflicts))
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrRoomUnavailable
}

// ConflictsOf извлекает конфликты из ошибки (nil если это не конфликт)
func ConflictsOf(err error) []*model.Reservation {
	var unavailable *UnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.Conflicts
	}
	return nil
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
