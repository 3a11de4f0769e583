package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCallbackQuery распределяет callback query по обработчикам
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data
	h.Logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	switch {
	case data == keyboard.Noop:
		answer(ctx, b, callback.ID, "")
	case data == keyboard.BackToRooms:
		h.handleBackToRooms(ctx, b, callback)

	// Бронирование
	case strings.HasPrefix(data, keyboard.PrefixRoom):
		h.handleViewRoom(ctx, b, callback)
	case strings.HasPrefix(data, keyboard.PrefixBook):
		h.handleBookRoom(ctx, b, callback)
	case strings.HasPrefix(data, keyboard.PrefixDuration):
		h.handleDuration(ctx, b, callback)

	// Отмена
	case strings.HasPrefix(data, keyboard.PrefixCancelRes):
		h.handleCancelReservation(ctx, b, callback)
	case strings.HasPrefix(data, keyboard.PrefixConfirmCancel):
		h.handleConfirmCancel(ctx, b, callback)

	// Администрирование
	case strings.HasPrefix(data, keyboard.PrefixToggleRoom):
		h.handleToggleRoom(ctx, b, callback)
	case strings.HasPrefix(data, keyboard.PrefixDeleteRoom):
		h.handleDeleteRoom(ctx, b, callback)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		answer(ctx, b, callback.ID, "❓ Неизвестное действие")
	}
}
