package formatting

import "github.com/Freeeeeet/room_booking_bot/internal/model"

// StatusDisplay представляет отображение статуса брони
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetReservationStatusDisplay возвращает emoji и текст для статуса брони
func GetReservationStatusDisplay(status model.ReservationStatus) StatusDisplay {
	displays := map[model.ReservationStatus]StatusDisplay{
		model.ReservationStatusPending:   {"⏳", "Ожидает подтверждения"},
		model.ReservationStatusConfirmed: {"✅", "Подтверждена"},
		model.ReservationStatusCancelled: {"❌", "Отменена"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Неизвестно"}
}

// RoomAvailabilityDisplay - значок доступности зала
func RoomAvailabilityDisplay(available bool) StatusDisplay {
	if available {
		return StatusDisplay{"🟢", "Доступен"}
	}
	return StatusDisplay{"🔴", "Отключён"}
}
