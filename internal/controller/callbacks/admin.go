package callbacks

import (
	"context"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleToggleRoom включает или отключает зал
func (h *Handler) handleToggleRoom(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	if _, err := h.loadAdmin(ctx, callback); err != nil {
		h.denyAccess(ctx, b, callback, err)
		return
	}

	roomID, err := keyboard.ParseID(callback.Data, keyboard.PrefixToggleRoom)
	if err != nil {
		answerAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	room, err := h.RoomService.Get(ctx, roomID)
	if err != nil {
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}

	room, err = h.RoomService.SetAvailable(ctx, roomID, !room.Available)
	if err != nil {
		h.Logger.Error("Failed to toggle room", zap.String("room_id", roomID), zap.Error(err))
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}

	answer(ctx, b, callback.ID, formatting.RoomAvailabilityDisplay(room.Available).Text)
	h.refreshAdminRooms(ctx, b, callback)
}

// handleDeleteRoom удаляет зал; брони зала остаются
func (h *Handler) handleDeleteRoom(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	if _, err := h.loadAdmin(ctx, callback); err != nil {
		h.denyAccess(ctx, b, callback, err)
		return
	}

	roomID, err := keyboard.ParseID(callback.Data, keyboard.PrefixDeleteRoom)
	if err != nil {
		answerAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	if err := h.RoomService.Delete(ctx, roomID); err != nil {
		h.Logger.Error("Failed to delete room", zap.String("room_id", roomID), zap.Error(err))
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}

	answer(ctx, b, callback.ID, "🗑 Зал удалён")
	h.refreshAdminRooms(ctx, b, callback)
}

func (h *Handler) refreshAdminRooms(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	rooms, err := h.RoomService.List(ctx)
	if err != nil {
		h.Logger.Error("Failed to list rooms", zap.Error(err))
		return
	}

	text := "🔑 Управление залами"
	if len(rooms) == 0 {
		text = "🏛 Залов больше нет"
	}
	h.editMessage(ctx, b, messageOf(callback), text, keyboard.AdminRooms(rooms))
}
