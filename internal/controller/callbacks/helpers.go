package callbacks

import (
	"context"
	"errors"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

var (
	errUserNotFound = errors.New("user not found")
	errNotAdmin     = errors.New("user is not an admin")
)

// answer отвечает на callback query (без alert)
func answer(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
}

// answerAlert отвечает на callback query всплывающим окном
func answerAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// messageOf извлекает сообщение из callback query
func messageOf(callback *models.CallbackQuery) *models.Message {
	return callback.Message.Message
}

// loadUser получает зарегистрированного пользователя, нажавшего кнопку
func (h *Handler) loadUser(ctx context.Context, callback *models.CallbackQuery) (*model.User, error) {
	user, err := h.UserService.GetByTelegramID(ctx, callback.From.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserNotFound
	}
	return user, nil
}

func (h *Handler) loadAdmin(ctx context.Context, callback *models.CallbackQuery) (*model.User, error) {
	user, err := h.loadUser(ctx, callback)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, errNotAdmin
	}
	return user, nil
}

// denyAccess отвечает на ошибку загрузки пользователя
func (h *Handler) denyAccess(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, err error) {
	switch {
	case errors.Is(err, errUserNotFound):
		answerAlert(ctx, b, callback.ID, "❌ Пользователь не найден. Используйте /start")
	case errors.Is(err, errNotAdmin):
		answerAlert(ctx, b, callback.ID, "❌ Доступно только администраторам")
	default:
		h.Logger.Error("Failed to load user", zap.Int64("telegram_id", callback.From.ID), zap.Error(err))
		answerAlert(ctx, b, callback.ID, "❌ Ошибка получения пользователя")
	}
}

// editMessage заменяет текст и клавиатуру сообщения с кнопками
func (h *Handler) editMessage(ctx context.Context, b *bot.Bot, msg *models.Message, text string, markup models.ReplyMarkup) {
	if msg == nil {
		return
	}

	params := &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      text,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.EditMessageText(ctx, params); err != nil {
		h.Logger.Error("Failed to edit message", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
	}
}

// sendMessage отправляет новое сообщение в чат callback
func (h *Handler) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		h.Logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
