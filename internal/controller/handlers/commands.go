package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Сколько последних броней показывать в /mybookings
const myBookingsLimit = 10

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	registeredUser, err := h.userService.RegisterUser(ctx, profileFrom(update.Message.From))
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Я помогу забронировать зал для встречи или занятия.\n\n"+
			"/rooms - Доступные залы\n"+
			"/mybookings - Мои брони\n"+
			"/today - Брони на сегодня\n"+
			"/help - Справка",
		registeredUser.FullName(),
	)
	if registeredUser.IsAdmin {
		welcomeText += "\n\n🔑 Вы администратор: /adminrooms, /addroom"
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	limits := h.reservationService.Limits()
	helpText := "📚 Справка по командам:\n\n" +
		"/start - Начать работу с ботом\n" +
		"/rooms - Список доступных залов\n" +
		"/mybookings - Мои брони\n" +
		"/today - Все брони на сегодня\n" +
		"/active - Актуальные брони\n" +
		"/cancel - Прервать текущий диалог\n\n" +
		"Для администраторов:\n" +
		"/addroom Название; вместимость; оборудование через запятую\n" +
		"/adminrooms - Управление залами\n\n" +
		fmt.Sprintf("Бронь длится от %s до %s. Время указывается в формате дд.мм.гггг чч:мм.",
			formatting.FormatDuration(limits.MinMinutes),
			formatting.FormatDuration(limits.MaxMinutes),
		)

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.", nil)
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.", nil)
}

// HandleRooms показывает доступные залы
func (h *Handlers) HandleRooms(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	rooms, err := h.roomService.ListAvailable(ctx)
	if err != nil {
		h.logger.Error("Failed to list rooms", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, h.serviceErrorText(err))
		return
	}

	if len(rooms) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "🏛 Сейчас нет доступных залов.", nil)
		return
	}

	text := fmt.Sprintf("🏛 Доступно %d %s. Выберите зал:", len(rooms), formatting.PluralizeRooms(len(rooms)))
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, keyboard.Rooms(rooms))
}

// HandleMyBookings показывает брони пользователя с кнопками отмены
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByUser(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to list user reservations", zap.String("user_id", user.ID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, h.serviceErrorText(err))
		return
	}

	if len(reservations) > myBookingsLimit {
		reservations = reservations[:myBookingsLimit]
	}

	var markup models.ReplyMarkup
	if buttons := keyboard.CancelButtons(reservations); len(buttons.InlineKeyboard) > 0 {
		markup = buttons
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, numbered("📅 Мои брони", reservations, h), markup)
}

// HandleToday показывает брони на текущую дату
func (h *Handlers) HandleToday(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	today := h.now()
	reservations, err := h.reservationService.ListOnDate(ctx, today)
	if err != nil {
		h.logger.Error("Failed to list reservations on date", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, h.serviceErrorText(err))
		return
	}

	title := fmt.Sprintf("📆 Брони на %s (%s)", formatting.FormatDate(today), strings.ToLower(formatting.GetWeekdayName(today.Weekday())))
	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatReservationList(title, reservations, h.location), nil)
}

// HandleActive показывает брони, которые ещё не закончились
func (h *Handlers) HandleActive(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	reservations, err := h.reservationService.ListActiveNow(ctx)
	if err != nil {
		h.logger.Error("Failed to list active reservations", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, h.serviceErrorText(err))
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatReservationList("🕐 Актуальные брони", reservations, h.location), nil)
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	if strings.HasPrefix(update.Message.Text, "/") {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "🤔 Неизвестная команда. Список команд: /help", nil)
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateBookingStart:
		h.handleBookingStartInput(ctx, b, update)
	case state.StateBookingDuration:
		h.handleBookingDurationInput(ctx, b, update)
	case state.StateBookingPurpose:
		h.handleBookingPurposeInput(ctx, b, update)
	default:
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Выберите зал в /rooms или посмотрите /help", nil)
	}
}

// numbered нумерует брони так же, как кнопки отмены
func numbered(title string, reservations []*model.Reservation, h *Handlers) string {
	if len(reservations) == 0 {
		return title + "\n\nУ вас пока нет броней. Выберите зал: /rooms"
	}

	var sb strings.Builder
	sb.WriteString(title)
	for i, res := range reservations {
		fmt.Fprintf(&sb, "\n\n#%d %s", i+1, formatting.FormatReservation(res, h.location))
	}
	return sb.String()
}
