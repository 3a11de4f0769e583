package keyboard

import (
	"fmt"
	"strconv"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// Длительности, предлагаемые кнопками (в минутах)
var Durations = []int{30, 60, 90, 120, 180, 240, 480}

// Rooms - список залов для выбора
func Rooms(rooms []*model.Room) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	for _, room := range rooms {
		b.Row(Button(formatting.FormatRoomShort(room), PrefixRoom+room.ID))
	}
	return b.Build()
}

// RoomDetails - кнопки под карточкой зала
func RoomDetails(room *model.Room) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	if room.Available {
		b.Row(Button("📅 Забронировать", PrefixBook+room.ID))
	}
	return b.Row(Button("⬅️ К списку залов", BackToRooms)).Build()
}

// DurationChoices - кнопки длительности в пределах [min, max]
func DurationChoices(minMinutes, maxMinutes int) *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(Durations))
	for _, d := range Durations {
		if d < minMinutes || d > maxMinutes {
			continue
		}
		buttons = append(buttons, Button(formatting.FormatDuration(d), PrefixDuration+strconv.Itoa(d)))
	}
	return NewBuilder().Chunked(3, buttons...).Build()
}

// CancelButtons - кнопки отмены для активных броней пользователя
func CancelButtons(reservations []*model.Reservation) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	for i, res := range reservations {
		if !res.IsActive() {
			continue
		}
		b.Row(Button(fmt.Sprintf("❌ Отменить #%d", i+1), PrefixCancelRes+res.ID))
	}
	return b.Build()
}

// ConfirmCancel - подтверждение отмены брони
func ConfirmCancel(reservationID string) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button("✅ Да, отменить", PrefixConfirmCancel+reservationID),
			Button("↩️ Нет", Noop),
		).
		Build()
}

// AdminRooms - управление залами
func AdminRooms(rooms []*model.Room) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	for _, room := range rooms {
		toggle := "🔴 Отключить"
		if !room.Available {
			toggle = "🟢 Включить"
		}
		b.Row(Button(room.Name, PrefixRoom+room.ID))
		b.Row(
			Button(toggle, PrefixToggleRoom+room.ID),
			Button("🗑 Удалить", PrefixDeleteRoom+room.ID),
		)
	}
	return b.Build()
}
