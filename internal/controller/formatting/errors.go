package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
)

// ErrorMessage возвращает пользовательское сообщение для ошибки сервиса
func ErrorMessage(err error, limits timerange.Limits, loc *time.Location) string {
	switch service.KindOf(err) {
	case service.KindInvalidRange:
		return "❌ Время окончания должно быть позже времени начала."
	case service.KindNotInFuture:
		return "❌ Нельзя забронировать зал на прошедшее время."
	case service.KindTooShort:
		return fmt.Sprintf("❌ Минимальная длительность брони: %s.", FormatDuration(limits.MinMinutes))
	case service.KindTooLong:
		return fmt.Sprintf("❌ Максимальная длительность брони: %s.", FormatDuration(limits.MaxMinutes))
	case service.KindRoomUnavailable:
		return "❌ Зал уже занят в это время:\n" + FormatConflicts(service.ConflictsOf(err), loc)
	case service.KindRoomDisabled:
		return "❌ Зал временно недоступен для бронирования."
	case service.KindNotFound:
		return "❌ Не найдено. Возможно, запись уже удалена."
	case service.KindInvalidTransition:
		return "❌ Эту бронь нельзя отменить."
	case service.KindInvalidRoom:
		return "❌ Некорректные данные зала: название от 2 символов, вместимость от 1 до 1000."
	default:
		return "❌ Произошла ошибка. Попробуйте позже."
	}
}
