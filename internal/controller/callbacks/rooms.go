package callbacks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/handlers"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Сколько ближайших броней показывать в карточке зала
const upcomingLimit = 5

func (h *Handler) handleBackToRooms(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	rooms, err := h.RoomService.ListAvailable(ctx)
	if err != nil {
		h.Logger.Error("Failed to list rooms", zap.Error(err))
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}

	answer(ctx, b, callback.ID, "")
	h.editMessage(ctx, b, messageOf(callback), "🏛 Выберите зал:", keyboard.Rooms(rooms))
}

// handleViewRoom показывает карточку зала и ближайшие брони
func (h *Handler) handleViewRoom(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	roomID, err := keyboard.ParseID(callback.Data, keyboard.PrefixRoom)
	if err != nil {
		answerAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	room, err := h.RoomService.Get(ctx, roomID)
	if err != nil {
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}

	reservations, err := h.ReservationService.ListByRoom(ctx, roomID)
	if err != nil {
		h.Logger.Error("Failed to list room reservations", zap.String("room_id", roomID), zap.Error(err))
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}

	var sb strings.Builder
	sb.WriteString(formatting.FormatRoom(room))

	now := time.Now()
	upcoming := 0
	for _, res := range reservations {
		if upcoming == upcomingLimit {
			break
		}
		if res.EndTime.Before(now) {
			continue
		}
		if upcoming == 0 {
			sb.WriteString("\n\n📅 Ближайшие брони:")
		}
		start, end := res.StartTime.In(h.Location), res.EndTime.In(h.Location)
		fmt.Fprintf(&sb, "\n• %s (%s)", formatting.FormatTimeRange(start, end), formatting.FormatDuration(timerange.DurationMinutes(start, end)))
		upcoming++
	}
	if upcoming == 0 {
		sb.WriteString("\n\n📅 Ближайших броней нет")
	}

	answer(ctx, b, callback.ID, "")
	h.editMessage(ctx, b, messageOf(callback), sb.String(), keyboard.RoomDetails(room))
}

// handleBookRoom начинает диалог бронирования
func (h *Handler) handleBookRoom(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	if _, err := h.loadUser(ctx, callback); err != nil {
		h.denyAccess(ctx, b, callback, err)
		return
	}

	roomID, err := keyboard.ParseID(callback.Data, keyboard.PrefixBook)
	if err != nil {
		answerAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	room, err := h.RoomService.Get(ctx, roomID)
	if err != nil {
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}
	if !room.Available {
		answerAlert(ctx, b, callback.ID, "❌ Зал временно недоступен для бронирования.")
		return
	}

	h.StateManager.StartBooking(callback.From.ID, room.ID, room.Name)

	answer(ctx, b, callback.ID, "")
	if msg := messageOf(callback); msg != nil {
		h.sendMessage(ctx, b, msg.Chat.ID, handlers.StartTimePrompt(room.Name, time.Now().In(h.Location)), nil)
	}
}

// handleDuration принимает длительность, выбранную кнопкой
func (h *Handler) handleDuration(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID

	if h.StateManager.GetState(telegramID) != state.StateBookingDuration {
		answerAlert(ctx, b, callback.ID, "⌛ Диалог устарел. Начните заново: /rooms")
		return
	}

	minutes, err := keyboard.ParseMinutes(callback.Data)
	if err != nil {
		answerAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	h.StateManager.UpdateDraft(telegramID, state.StateBookingPurpose, func(d *state.BookingDraft) {
		d.DurationMinutes = minutes
	})
	draft, _ := h.StateManager.Draft(telegramID)

	answer(ctx, b, callback.ID, formatting.FormatDuration(minutes))
	h.editMessage(ctx, b, messageOf(callback), handlers.PurposePrompt(draft, h.Location), nil)
}
