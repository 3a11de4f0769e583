package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Символ, которым пропускают ввод цели
const skipPurpose = "-"

var errInvalidMinutes = errors.New("invalid minutes")

// StartTimePrompt - первый вопрос диалога бронирования.
// Пример времени строится от now в его часовом поясе: завтра, начало текущего часа.
func StartTimePrompt(roomName string, now time.Time) string {
	example := time.Date(now.Year(), now.Month(), now.Day()+1, now.Hour(), 0, 0, 0, now.Location())
	return fmt.Sprintf(
		"📅 Бронирование: %s\n\n"+
			"Введите дату и время начала в формате дд.мм.гггг чч:мм\n"+
			"Например: %s\n\n"+
			"Отменить: /cancel",
		roomName,
		formatting.FormatDateTime(example),
	)
}

// PurposePrompt - вопрос о цели после выбора длительности
func PurposePrompt(draft state.BookingDraft, loc *time.Location) string {
	return fmt.Sprintf(
		"🕐 %s (%s)\n\n"+
			"Укажите цель бронирования или отправьте \"%s\", чтобы пропустить.",
		formatting.FormatTimeRange(draft.Start.In(loc), draft.End().In(loc)),
		formatting.FormatDuration(draft.DurationMinutes),
		skipPurpose,
	)
}

func (h *Handlers) now() time.Time {
	return time.Now().In(h.location)
}

func (h *Handlers) handleBookingStartInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	start, err := formatting.ParseDateTime(update.Message.Text, h.location)
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Неверный формат. Введите дату и время как дд.мм.гггг чч:мм")
		return
	}
	if !start.After(h.now()) {
		h.sendError(ctx, b, chatID, h.serviceErrorText(service.ErrNotInFuture))
		return
	}

	if !h.stateManager.UpdateDraft(telegramID, state.StateBookingDuration, func(d *state.BookingDraft) { d.Start = start }) {
		return
	}

	limits := h.reservationService.Limits()
	text := fmt.Sprintf(
		"⏱ Начало: %s\n\nВыберите длительность или введите её в минутах (от %d до %d):",
		formatting.FormatDateTime(start),
		limits.MinMinutes,
		limits.MaxMinutes,
	)
	h.sendMessage(ctx, b, chatID, text, keyboard.DurationChoices(limits.MinMinutes, limits.MaxMinutes))
}

func (h *Handlers) handleBookingDurationInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	minutes, err := parseMinutesText(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Введите длительность целым числом минут, например 90")
		return
	}

	if !h.stateManager.UpdateDraft(telegramID, state.StateBookingPurpose, func(d *state.BookingDraft) { d.DurationMinutes = minutes }) {
		return
	}

	draft, _ := h.stateManager.Draft(telegramID)
	h.sendMessage(ctx, b, chatID, PurposePrompt(draft, h.location), nil)
}

func (h *Handlers) handleBookingPurposeInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		h.stateManager.ClearState(telegramID)
		return
	}

	draft, ok := h.stateManager.Draft(telegramID)
	if !ok {
		return
	}

	purpose := strings.TrimSpace(update.Message.Text)
	if purpose == skipPurpose {
		purpose = ""
	}

	reservation, err := h.reservationService.Create(ctx, service.CreateReservationInput{
		RoomID:  draft.RoomID,
		UserID:  user.ID,
		Start:   draft.Start,
		End:     draft.End(),
		Purpose: purpose,
	})
	if err != nil {
		h.logger.Info("Reservation not created",
			zap.String("user_id", user.ID),
			zap.String("room_id", draft.RoomID),
			zap.String("kind", string(service.KindOf(err))),
			zap.Error(err),
		)

		switch service.KindOf(err) {
		case service.KindRoomUnavailable, service.KindNotInFuture, service.KindTooShort, service.KindTooLong:
			// Даём выбрать другое время в том же зале
			h.stateManager.StartBooking(telegramID, draft.RoomID, draft.RoomName)
			h.sendError(ctx, b, chatID, h.serviceErrorText(err)+"\n\nВведите другое время начала или /cancel")
		default:
			h.stateManager.ClearState(telegramID)
			h.sendError(ctx, b, chatID, h.serviceErrorText(err))
		}
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, chatID,
		"✅ Зал забронирован!\n\n"+formatting.FormatReservation(reservation, h.location)+"\n\nВсе брони: /mybookings",
		nil,
	)
}

func parseMinutesText(text string) (int, error) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "мин"))
	minutes, err := strconv.Atoi(text)
	if err != nil || minutes <= 0 {
		return 0, errInvalidMinutes
	}
	return minutes, nil
}
