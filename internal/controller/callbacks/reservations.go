package callbacks

import (
	"context"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// loadOwnReservation получает бронь и проверяет, что она принадлежит пользователю (или он админ)
func (h *Handler) loadOwnReservation(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, prefix string) (*model.Reservation, bool) {
	user, err := h.loadUser(ctx, callback)
	if err != nil {
		h.denyAccess(ctx, b, callback, err)
		return nil, false
	}

	reservationID, err := keyboard.ParseID(callback.Data, prefix)
	if err != nil {
		answerAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return nil, false
	}

	reservation, err := h.ReservationService.Get(ctx, reservationID)
	if err != nil {
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return nil, false
	}

	if reservation.UserID != user.ID && !user.IsAdmin {
		h.Logger.Warn("Attempt to cancel foreign reservation",
			zap.String("reservation_id", reservationID),
			zap.String("user_id", user.ID))
		answerAlert(ctx, b, callback.ID, "❌ Это не ваша бронь")
		return nil, false
	}

	return reservation, true
}

// handleCancelReservation спрашивает подтверждение отмены
func (h *Handler) handleCancelReservation(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	reservation, ok := h.loadOwnReservation(ctx, b, callback, keyboard.PrefixCancelRes)
	if !ok {
		return
	}

	if reservation.Status == model.ReservationStatusCancelled {
		answerAlert(ctx, b, callback.ID, "Эта бронь уже отменена")
		return
	}

	answer(ctx, b, callback.ID, "")
	if msg := messageOf(callback); msg != nil {
		h.sendMessage(ctx, b, msg.Chat.ID,
			"❓ Отменить бронь?\n\n"+formatting.FormatReservation(reservation, h.Location),
			keyboard.ConfirmCancel(reservation.ID),
		)
	}
}

// handleConfirmCancel отменяет бронь после подтверждения
func (h *Handler) handleConfirmCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	reservation, ok := h.loadOwnReservation(ctx, b, callback, keyboard.PrefixConfirmCancel)
	if !ok {
		return
	}

	cancelled, err := h.ReservationService.Cancel(ctx, reservation.ID)
	if err != nil {
		h.Logger.Error("Failed to cancel reservation", zap.String("reservation_id", reservation.ID), zap.Error(err))
		answerAlert(ctx, b, callback.ID, h.errorText(err))
		return
	}
	cancelled.Room = reservation.Room

	answer(ctx, b, callback.ID, "✅ Бронь отменена")
	h.editMessage(ctx, b, messageOf(callback), "✅ Бронь отменена\n\n"+formatting.FormatReservation(cancelled, h.Location), nil)
}
